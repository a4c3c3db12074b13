package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cinelog/cinelog-backend/config"
	"github.com/cinelog/cinelog-backend/internal/app/controller"
	"github.com/cinelog/cinelog-backend/internal/app/repository"
	"github.com/cinelog/cinelog-backend/internal/app/service"
	"github.com/cinelog/cinelog-backend/internal/db"
	"github.com/cinelog/cinelog-backend/internal/middleware"
	"github.com/cinelog/cinelog-backend/internal/router"
	"github.com/cinelog/cinelog-backend/internal/scheduler"
	"github.com/cinelog/cinelog-backend/internal/storage"
	"github.com/cinelog/cinelog-backend/internal/websocket"
	"github.com/cinelog/cinelog-backend/pkg/logger"
	"github.com/cinelog/cinelog-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting CineLog Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(cfg); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(db.GetDB()); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Redis backs token revocation; without it logout is a no-op.
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Warn("Redis unavailable, continuing without token revocation", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer func() {
		if err := redis.Close(); err != nil {
			logger.Error("Failed to close Redis connection", err)
		}
	}()

	// Websocket hub for live notifications
	hub := websocket.NewHub()
	go hub.Run()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	categoryRepo := repository.NewCategoryRepository(db.GetDB())
	movieRepo := repository.NewMovieRepository(db.GetDB())
	personRepo := repository.NewPersonRepository(db.GetDB())
	taxonomyRepo := repository.NewTaxonomyRepository(db.GetDB())
	reviewRepo := repository.NewReviewRepository(db.GetDB())
	replyRepo := repository.NewReplyRepository(db.GetDB())
	likeRepo := repository.NewLikeRepository(db.GetDB())
	notificationRepo := repository.NewNotificationRepository(db.GetDB())
	resetRepo := repository.NewPasswordResetRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(userRepo, resetRepo, &cfg.JWT)
	categoryService := service.NewCategoryService(categoryRepo)
	movieService := service.NewMovieService(movieRepo, categoryRepo, personRepo, taxonomyRepo)
	personService := service.NewPersonService(personRepo)
	notificationService := service.NewNotificationService(notificationRepo, hub)
	reviewService := service.NewReviewService(reviewRepo, movieRepo)
	replyService := service.NewReplyService(replyRepo, reviewRepo, notificationService)
	likeService := service.NewLikeService(likeRepo, movieRepo, reviewRepo, replyRepo)
	exportService := service.NewExportService(movieRepo)

	// Storage for presigned uploads
	s3Storage := storage.NewS3Storage(cfg.S3)

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	categoryController := controller.NewCategoryController(categoryService)
	movieController := controller.NewMovieController(movieService)
	personController := controller.NewPersonController(personService)
	reviewController := controller.NewReviewController(reviewService)
	replyController := controller.NewReplyController(replyService)
	likeController := controller.NewLikeController(likeService)
	notificationController := controller.NewNotificationController(notificationService, hub)
	uploadController := controller.NewUploadController(s3Storage)
	exportController := controller.NewExportController(exportService)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Setup router
	r := router.NewRouter(
		authController,
		categoryController,
		movieController,
		personController,
		reviewController,
		replyController,
		likeController,
		notificationController,
		uploadController,
		exportController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Background jobs
	resetScheduler := scheduler.NewPasswordResetScheduler(resetRepo)
	if err := resetScheduler.Start(); err != nil {
		logger.Error("Failed to start password reset scheduler", err)
	}
	defer resetScheduler.Stop()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
