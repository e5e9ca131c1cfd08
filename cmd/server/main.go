package main

import (
	"context"
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/nazeeh4611/Simpolo-backend/internal/application"
	"github.com/nazeeh4611/Simpolo-backend/internal/config"
	"github.com/nazeeh4611/Simpolo-backend/internal/email"
	"github.com/nazeeh4611/Simpolo-backend/internal/infrastructure/repository"
	handlers "github.com/nazeeh4611/Simpolo-backend/internal/interfaces/http"
	services "github.com/nazeeh4611/Simpolo-backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer zapLogger.Sync()
	logger := zapLogger.Sugar()

	db, err := sql.Open("postgres", cfg.GetDBConnString())
	if err != nil {
		logger.Fatalw("Error connecting to database", "error", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatalw("Error pinging database", "error", err)
	}

	ctx := context.Background()
	if err := repository.EnsureSchema(ctx, db); err != nil {
		logger.Fatalw("Error ensuring database schema", "error", err)
	}

	s3Service, err := services.NewS3Service(ctx, cfg.S3Bucket, cfg.AWSRegion)
	if err != nil {
		logger.Fatalw("Error initializing S3", "error", err)
	}

	app := fiber.New(fiber.Config{
		// Up to 10 images of 10MB each per request, plus form overhead.
		BodyLimit: 110 << 20,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       86400,
	}))

	// Attachments
	attachments := application.NewAttachmentManager(s3Service, logger)

	// Gallery
	galleryRepo := repository.NewGalleryRepository(db)
	galleryService := application.NewGalleryService(galleryRepo, attachments, logger)
	galleryHandler := handlers.NewGalleryHandler(galleryService)

	// Projects
	projectRepo := repository.NewProjectRepository(db)
	projectService := application.NewProjectService(projectRepo, attachments, logger)
	projectHandler := handlers.NewProjectHandler(projectService)

	// Auth
	adminRepo := repository.NewAdminRepository(db)
	authService := application.NewAuthService(adminRepo, cfg.JWTSecret, cfg.DefaultAdminPassword, logger)
	authHandler := handlers.NewAuthHandler(authService)

	// Dashboard
	dashboardService := application.NewDashboardService(galleryRepo, projectRepo, adminRepo)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Email client
	var emailClient *email.Client
	if cfg.EmailConfigured() {
		emailClient, err = email.NewClient(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUser,
			cfg.SMTPPassword,
			cfg.SMTPFromName,
			cfg.SMTPFromEmail,
		)
		if err != nil {
			logger.Warnw("Email client initialization failed, continuing without email", "error", err)
			emailClient = nil
		}
	}

	// Inquiries
	inquiryRepo := repository.NewInquiryRepository(db)
	var notifier application.InquiryNotifier
	if emailClient != nil {
		notifier = emailClient
	}
	inquiryService := application.NewInquiryService(inquiryRepo, notifier, cfg.InquiryEmail, logger)
	inquiryHandler := handlers.NewInquiryHandler(inquiryService)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "API is running"})
	})

	api := app.Group("/api")

	// Public routes
	api.Get("/gallery", galleryHandler.List)
	api.Get("/gallery/:id", galleryHandler.GetByID)
	api.Get("/projects", projectHandler.List)
	api.Get("/projects/:id", projectHandler.GetByID)
	api.Post("/contact", inquiryHandler.Create)

	// Admin routes
	admin := api.Group("/admin")
	admin.Post("/login", authHandler.Login)
	admin.Post("/register", authHandler.Register)
	admin.Post("/seed", authHandler.Seed)

	auth := handlers.RequireAdmin(authService)
	admin.Put("/change-password", auth, authHandler.ChangePassword)

	admin.Get("/gallery/categories", auth, galleryHandler.GetCategories)
	admin.Get("/gallery", auth, galleryHandler.List)
	admin.Get("/gallery/:id", auth, galleryHandler.GetByID)
	admin.Post("/gallery", auth, galleryHandler.Create)
	admin.Put("/gallery/:id", auth, galleryHandler.Update)
	admin.Delete("/gallery/:id/images/:imageIndex", auth, galleryHandler.DeleteImage)
	admin.Delete("/gallery/:id", auth, galleryHandler.Delete)

	admin.Get("/projects/categories", auth, projectHandler.GetCategories)
	admin.Get("/projects", auth, projectHandler.List)
	admin.Get("/projects/:id", auth, projectHandler.GetByID)
	admin.Post("/projects", auth, projectHandler.Create)
	admin.Put("/projects/:id", auth, projectHandler.Update)
	admin.Delete("/projects/:id/images/:imageIndex", auth, projectHandler.DeleteImage)
	admin.Delete("/projects/:id", auth, projectHandler.Delete)

	admin.Get("/dashboard/stats", auth, dashboardHandler.Stats)

	admin.Get("/contact", auth, inquiryHandler.List)
	admin.Patch("/contact/:id/status", auth, inquiryHandler.UpdateStatus)

	logger.Infow("Server starting", "port", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		logger.Fatalw("Error starting server", "error", err)
	}
}
