package config

import (
	"fmt"
	"os"
)

// Config holds every environment-derived setting the server needs.
type Config struct {
	ServerPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	AWSRegion string
	S3Bucket  string

	JWTSecret            string
	DefaultAdminPassword string

	CORSAllowOrigins string

	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string
	InquiryEmail  string
}

// LoadConfig reads the configuration from environment variables. JWT_SECRET
// is the only variable without a usable default and must be set.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort: getEnv("PORT", "5004"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "simpolo"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		AWSRegion: getEnv("AWS_REGION", "me-central-1"),
		S3Bucket:  os.Getenv("AWS_BUCKET"),

		JWTSecret:            os.Getenv("JWT_SECRET"),
		DefaultAdminPassword: getEnv("DEFAULT_ADMIN_PASSWORD", "Simpolo@2025"),

		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173"),

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFromName:  getEnv("SMTP_FROM_NAME", "Simpolo Trading"),
		SMTPFromEmail: os.Getenv("SMTP_FROM_EMAIL"),
		InquiryEmail:  os.Getenv("INQUIRY_EMAIL"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("AWS_BUCKET is not set")
	}

	return cfg, nil
}

// GetDBConnString assembles the lib/pq connection string.
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// EmailConfigured reports whether the SMTP settings are complete enough to
// send inquiry notifications.
func (c *Config) EmailConfigured() bool {
	return c.SMTPHost != "" && c.SMTPFromEmail != "" && c.InquiryEmail != ""
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
