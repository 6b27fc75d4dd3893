package delivery

import (
	"errors"
	"net/http"
	"strconv"

	authdelivery "seoprofil-backend/internal/auth/delivery"
	"seoprofil-backend/internal/image/dto"
	"seoprofil-backend/internal/image/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ImageHandler struct {
	imageUsecase usecase.ImageUsecase
	logger       *zap.Logger
}

func NewImageHandler(imageUsecase usecase.ImageUsecase, logger *zap.Logger) *ImageHandler {
	return &ImageHandler{imageUsecase: imageUsecase, logger: logger}
}

// Generate handles POST /api/images/generate
func (h *ImageHandler) Generate(c *gin.Context) {
	user := authdelivery.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user input is required"})
		return
	}

	image, err := h.imageUsecase.Generate(c.Request.Context(), user.ID, req.UserInput, req.ImageType)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyInput), errors.Is(err, usecase.ErrInvalidImageType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("image generation failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, dto.GenerateResponse{
		Success: true,
		Image:   dto.ToImageResponse(image),
	})
}

// History handles GET /api/images/history
func (h *ImageHandler) History(c *gin.Context) {
	user := authdelivery.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))

	list, err := h.imageUsecase.History(user.ID, page, perPage)
	if err != nil {
		h.logger.Error("failed to fetch image history", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get image history"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// Delete handles DELETE /api/images/delete/:id
func (h *ImageHandler) Delete(c *gin.Context) {
	user := authdelivery.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	if err := h.imageUsecase.Delete(user.ID, c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrImageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
			return
		}
		h.logger.Error("failed to delete image", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Image deleted successfully"})
}
