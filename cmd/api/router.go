package api

import (
	"net/http"

	"seoprofil-backend/internal/auth/delivery"
	authUsecase "seoprofil-backend/internal/auth/usecase"
	imageDelivery "seoprofil-backend/internal/image/delivery"
	seoDelivery "seoprofil-backend/internal/seo/delivery"
	"seoprofil-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(r *gin.Engine, authUsecase authUsecase.AuthUsecase, seoHandler *seoDelivery.SEOHandler, imageHandler *imageDelivery.ImageHandler, cfg *config.Config) {
	authHandler := delivery.NewAuthHandler(authUsecase)

	// Generated images are served from disk under the same paths stored in
	// the database.
	r.Static("/static/uploads", cfg.UploadDir)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", delivery.AuthMiddleware(authUsecase), authHandler.Me)
			auth.GET("/verify", delivery.AuthMiddleware(authUsecase), authHandler.Verify)
			auth.POST("/register", delivery.AuthMiddleware(authUsecase), delivery.AdminMiddleware(), authHandler.Register)
		}

		// User management routes (admin only)
		users := api.Group("/users")
		users.Use(delivery.AuthMiddleware(authUsecase), delivery.AdminMiddleware())
		{
			users.GET("", authHandler.GetUsers)
			users.POST("", authHandler.CreateUser)
			users.GET("/:id", authHandler.GetUser)
			users.PUT("/:id", authHandler.UpdateUser)
			users.DELETE("/:id", authHandler.DeleteUser)
		}

		// SEO analysis routes (protected)
		seo := api.Group("/seo")
		seo.Use(delivery.AuthMiddleware(authUsecase))
		{
			seo.POST("/analyze", seoHandler.Analyze)
			seo.GET("/results", seoHandler.GetResults)
			seo.GET("/results/:id", seoHandler.GetResult)
			seo.DELETE("/results/:id", delivery.AdminMiddleware(), seoHandler.DeleteResult)
			seo.GET("/domains/autocomplete", seoHandler.AutocompleteDomains)
		}

		// Image generation routes (protected)
		images := api.Group("/images")
		images.Use(delivery.AuthMiddleware(authUsecase))
		{
			images.POST("/generate", imageHandler.Generate)
			images.GET("/history", imageHandler.History)
			images.DELETE("/delete/:id", imageHandler.Delete)
		}
	}
}
