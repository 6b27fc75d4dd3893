package repository

import (
	"errors"
	"time"

	imagedomain "seoprofil-backend/internal/image/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gormImageRepository struct {
	db *gorm.DB
}

// NewGormImageRepository creates a new GORM-based ImageRepository
func NewGormImageRepository(db *gorm.DB) ImageRepository {
	return &gormImageRepository{db: db}
}

func (r *gormImageRepository) Create(image *imagedomain.GeneratedImage) error {
	if image.ID == "" {
		image.ID = uuid.New().String()
	}
	image.CreatedAt = time.Now()
	return r.db.Create(image).Error
}

func (r *gormImageRepository) FindByIDAndUser(id, userID string) (*imagedomain.GeneratedImage, error) {
	var image imagedomain.GeneratedImage
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&image).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &image, nil
}

func (r *gormImageRepository) ListByUser(userID string, page, perPage int) ([]*imagedomain.GeneratedImage, int64, error) {
	var images []*imagedomain.GeneratedImage
	var total int64

	query := r.db.Model(&imagedomain.GeneratedImage{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * perPage
	err := query.Order("created_at DESC").Limit(perPage).Offset(offset).Find(&images).Error
	return images, total, err
}

func (r *gormImageRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&imagedomain.GeneratedImage{}).Error
}
