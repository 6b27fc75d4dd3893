package main

import (
	"log"

	api "seoprofil-backend/cmd/api"
	authdomain "seoprofil-backend/internal/auth/domain"
	authRepo "seoprofil-backend/internal/auth/repository"
	authUsecase "seoprofil-backend/internal/auth/usecase"
	imagedomain "seoprofil-backend/internal/image/domain"
	imageRepo "seoprofil-backend/internal/image/repository"
	seodomain "seoprofil-backend/internal/seo/domain"
	seoRepo "seoprofil-backend/internal/seo/repository"
	"seoprofil-backend/pkg/config"
	"seoprofil-backend/pkg/database"
	"seoprofil-backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zapLogger, err := logger.New(cfg.Mode)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&authdomain.RefreshToken{},
		&seodomain.SEOResult{},
		&imagedomain.GeneratedImage{},
	); err != nil {
		zapLogger.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	seoRepository := seoRepo.NewGormSEOResultRepository(db)
	imageRepository := imageRepo.NewGormImageRepository(db)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, cfg)

	// Seed the default admin account on first start
	if err := authUsecaseInstance.EnsureDefaultAdmin(cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		zapLogger.Fatal("Failed to ensure default admin", zap.Error(err))
	}

	// Initialize HTTP handler
	handler, err := api.NewHandler(authUsecaseInstance, seoRepository, imageRepository, cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to initialize handler", zap.Error(err))
	}

	// Start server
	zapLogger.Info("Server starting", zap.String("port", cfg.Port))
	if err := handler.Start(":" + cfg.Port); err != nil {
		zapLogger.Fatal("Failed to start server", zap.Error(err))
	}
}
