package delivery

import (
	"errors"
	"net/http"
	"strconv"

	authdelivery "seoprofil-backend/internal/auth/delivery"
	"seoprofil-backend/internal/seo/dto"
	"seoprofil-backend/internal/seo/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SEOHandler struct {
	seoUsecase usecase.SEOUsecase
	logger     *zap.Logger
}

func NewSEOHandler(seoUsecase usecase.SEOUsecase, logger *zap.Logger) *SEOHandler {
	return &SEOHandler{seoUsecase: seoUsecase, logger: logger}
}

// Analyze handles POST /api/seo/analyze
func (h *SEOHandler) Analyze(c *gin.Context) {
	user := authdelivery.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req dto.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "domain is required"})
		return
	}

	result, existed, err := h.seoUsecase.Analyze(c.Request.Context(), user, req.Domain)
	if err != nil {
		if errors.Is(err, usecase.ErrCrawlFailed) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("analysis failed", zap.String("domain", req.Domain), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if existed {
		c.JSON(http.StatusOK, dto.AnalyzeResponse{
			Message: "Analysis already exists for this domain",
			Result:  dto.ToSEOResultResponse(result),
		})
		return
	}

	c.JSON(http.StatusCreated, dto.AnalyzeResponse{
		Message: "Domain analysis completed successfully",
		Result:  dto.ToSEOResultResponse(result),
	})
}

// GetResults handles GET /api/seo/results
func (h *SEOHandler) GetResults(c *gin.Context) {
	user := authdelivery.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	search := c.Query("search")

	list, err := h.seoUsecase.ListResults(user, search, page, perPage)
	if err != nil {
		h.logger.Error("failed to list results", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch results"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetResult handles GET /api/seo/results/:id
func (h *SEOHandler) GetResult(c *gin.Context) {
	user := authdelivery.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	result, err := h.seoUsecase.GetResult(user, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrResultNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "result not found"})
		case errors.Is(err, usecase.ErrAccessDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch result"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSEOResultResponse(result))
}

// DeleteResult handles DELETE /api/seo/results/:id (admin only)
func (h *SEOHandler) DeleteResult(c *gin.Context) {
	if err := h.seoUsecase.DeleteResult(c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrResultNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "result not found"})
			return
		}
		h.logger.Error("failed to delete result", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete result"})
		return
	}

	c.Status(http.StatusNoContent)
}

// AutocompleteDomains handles GET /api/seo/domains/autocomplete
func (h *SEOHandler) AutocompleteDomains(c *gin.Context) {
	user := authdelivery.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	suggestions, err := h.seoUsecase.AutocompleteDomains(user, c.Query("q"))
	if err != nil {
		h.logger.Error("autocomplete failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch suggestions"})
		return
	}

	c.JSON(http.StatusOK, suggestions)
}
