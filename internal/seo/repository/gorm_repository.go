package repository

import (
	"errors"
	"time"

	seodomain "seoprofil-backend/internal/seo/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormSEOResultRepository implements SEOResultRepository using GORM
type gormSEOResultRepository struct {
	db *gorm.DB
}

// NewGormSEOResultRepository creates a new GORM-based SEOResultRepository
func NewGormSEOResultRepository(db *gorm.DB) SEOResultRepository {
	return &gormSEOResultRepository{db: db}
}

func (r *gormSEOResultRepository) Create(result *seodomain.SEOResult) error {
	if result.ID == "" {
		result.ID = uuid.New().String()
	}
	result.CreatedAt = time.Now()
	return r.db.Create(result).Error
}

func (r *gormSEOResultRepository) FindByDomain(domain string) (*seodomain.SEOResult, error) {
	var result seodomain.SEOResult
	err := r.db.Preload("User").Where("domain = ?", domain).First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *gormSEOResultRepository) FindByID(id string) (*seodomain.SEOResult, error) {
	var result seodomain.SEOResult
	err := r.db.Preload("User").Where("id = ?", id).First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *gormSEOResultRepository) List(filter ListFilter) ([]*seodomain.SEOResult, int64, error) {
	var results []*seodomain.SEOResult
	var total int64

	query := r.db.Model(&seodomain.SEOResult{})
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Search != "" {
		query = query.Where("domain LIKE ?", "%"+filter.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PerPage
	err := query.Preload("User").Order("created_at DESC").
		Limit(filter.PerPage).Offset(offset).Find(&results).Error

	return results, total, err
}

func (r *gormSEOResultRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&seodomain.SEOResult{}).Error
}

func (r *gormSEOResultRepository) DistinctDomains(userID string, limit int) ([]string, error) {
	var domains []string
	query := r.db.Model(&seodomain.SEOResult{}).Distinct("domain")
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	err := query.Limit(limit).Pluck("domain", &domains).Error
	return domains, err
}
