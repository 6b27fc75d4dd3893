package api

import (
	authUsecase "seoprofil-backend/internal/auth/usecase"
	"seoprofil-backend/internal/crawler"
	imageDelivery "seoprofil-backend/internal/image/delivery"
	imageRepo "seoprofil-backend/internal/image/repository"
	imageUsecasePkg "seoprofil-backend/internal/image/usecase"
	seoDelivery "seoprofil-backend/internal/seo/delivery"
	seoRepo "seoprofil-backend/internal/seo/repository"
	seoUsecasePkg "seoprofil-backend/internal/seo/usecase"
	"seoprofil-backend/pkg/ai"
	"seoprofil-backend/pkg/config"
	"seoprofil-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type Handler struct {
	authUsecase  authUsecase.AuthUsecase
	seoHandler   *seoDelivery.SEOHandler
	imageHandler *imageDelivery.ImageHandler
	config       *config.Config
	logger       *zap.Logger
}

func NewHandler(
	authUc authUsecase.AuthUsecase,
	seoRepository seoRepo.SEOResultRepository,
	imageRepository imageRepo.ImageRepository,
	cfg *config.Config,
	logger *zap.Logger,
) (*Handler, error) {
	m := metrics.NewMetrics(prometheus.DefaultRegisterer)

	aiCfg := ai.Config{
		Provider:         ai.ProviderType(cfg.AIProvider),
		OpenAIAPIKey:     cfg.OpenAIAPIKey,
		OpenAIModel:      cfg.OpenAIModel,
		OpenAIImageModel: cfg.OpenAIImageModel,
		OllamaBaseURL:    cfg.OllamaBaseURL,
		OllamaModel:      cfg.OllamaModel,
	}

	copyService, err := ai.NewCopyService(aiCfg)
	if err != nil {
		return nil, err
	}
	logger.Info("AI copy service initialized", zap.String("provider", cfg.AIProvider))

	imageService := ai.NewImageService(aiCfg)

	crawlerService := crawler.NewService(cfg, logger)

	seoUc := seoUsecasePkg.NewSEOUsecase(seoRepository, crawlerService, copyService, m, logger, cfg.PromptIncludeCrawl)
	imageUc := imageUsecasePkg.NewImageUsecase(imageRepository, imageService, m, logger, cfg.UploadDir)

	return &Handler{
		authUsecase:  authUc,
		seoHandler:   seoDelivery.NewSEOHandler(seoUc, logger),
		imageHandler: imageDelivery.NewImageHandler(imageUc, logger),
		config:       cfg,
		logger:       logger,
	}, nil
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.seoHandler, h.imageHandler, h.config)

	return r.Run(addr)
}
