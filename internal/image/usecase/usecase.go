package usecase

import (
	"context"

	imagedomain "seoprofil-backend/internal/image/domain"
	"seoprofil-backend/internal/image/dto"
)

// ImageUsecase defines business logic for image generation
type ImageUsecase interface {
	Generate(ctx context.Context, userID, userInput, imageType string) (*imagedomain.GeneratedImage, error)
	History(userID string, page, perPage int) (*dto.ImageListResponse, error)
	Delete(userID, imageID string) error
}
