package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/nazeeh4611/Simpolo-backend/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is how long an issued admin token stays valid.
const tokenTTL = 7 * 24 * time.Hour

// seedEmails is the fixed account set created by Seed.
var seedEmails = []string{
	"info@simpolotrading.com",
	"mohd.aslam@simpolotrading.com",
	"accounts@simpolotrading.com",
	"operations@simpolotrading.com",
}

// LoginResult is returned on a successful login.
type LoginResult struct {
	Token              string `json:"token"`
	MustChangePassword bool   `json:"mustChangePassword"`
	Name               string `json:"name"`
	Role               string `json:"role"`
}

type AuthService struct {
	repo            domain.AdminRepository
	jwtSecret       []byte
	defaultPassword string
	log             *zap.SugaredLogger
}

func NewAuthService(repo domain.AdminRepository, jwtSecret, defaultPassword string, log *zap.SugaredLogger) *AuthService {
	return &AuthService{
		repo:            repo,
		jwtSecret:       []byte(jwtSecret),
		defaultPassword: defaultPassword,
		log:             log,
	}
}

// Login verifies the credentials and issues a signed, time-boxed token.
// Unknown emails and wrong passwords fail identically so accounts cannot be
// enumerated. On success the admin's lastLogin is updated.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.NewValidationError("email and password are required")
	}

	admin, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.issueToken(admin.ID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateLastLogin(ctx, admin.ID, time.Now()); err != nil {
		s.log.Warnw("failed to record last login", "admin", admin.Email, "error", err)
	}

	return &LoginResult{
		Token:              token,
		MustChangePassword: admin.IsDefaultPassword,
		Name:               admin.Name,
		Role:               admin.Role,
	}, nil
}

// Register creates a new admin account with the default password.
func (s *AuthService) Register(ctx context.Context, email string) (*domain.Admin, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, domain.NewValidationError("email is required")
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, domain.NewValidationError("admin already exists")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &domain.Admin{
		ID:                uuid.New(),
		Email:             email,
		Password:          string(hash),
		IsDefaultPassword: true,
		Name:              "Admin",
		Role:              "admin",
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// Seed idempotently creates the fixed admin accounts with the default
// password. Existing accounts are left untouched.
func (s *AuthService) Seed(ctx context.Context) error {
	for _, email := range seedEmails {
		_, err := s.Register(ctx, email)
		if err != nil {
			var ve *domain.ValidationError
			if errors.As(err, &ve) {
				continue // already exists
			}
			return fmt.Errorf("seeding %s: %w", email, err)
		}
		s.log.Infow("seeded admin account", "email", email)
	}
	return nil
}

// ChangePassword replaces the stored hash after verifying the old password
// and clears the default-password flag.
func (s *AuthService) ChangePassword(ctx context.Context, adminID uuid.UUID, oldPassword, newPassword string) error {
	if newPassword == "" {
		return domain.NewValidationError("new password is required")
	}

	admin, err := s.repo.GetByID(ctx, adminID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(oldPassword)) != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, admin.ID, string(hash))
}

// Authenticate verifies a bearer token and returns the admin identity it
// names. Any parse, signature or expiry failure yields ErrUnauthorized.
func (s *AuthService) Authenticate(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	adminID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return adminID, nil
}

func (s *AuthService) issueToken(adminID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   adminID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
