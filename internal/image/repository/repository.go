package repository

import imagedomain "seoprofil-backend/internal/image/domain"

// ImageRepository defines persistence operations for generated images
type ImageRepository interface {
	Create(image *imagedomain.GeneratedImage) error
	FindByIDAndUser(id, userID string) (*imagedomain.GeneratedImage, error)
	ListByUser(userID string, page, perPage int) ([]*imagedomain.GeneratedImage, int64, error)
	Delete(id string) error
}
