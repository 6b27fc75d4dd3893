package usecase

import (
	"context"

	authdomain "seoprofil-backend/internal/auth/domain"
	seodomain "seoprofil-backend/internal/seo/domain"
	"seoprofil-backend/internal/seo/dto"
)

// SEOUsecase defines business logic for domain analysis
type SEOUsecase interface {
	Analyze(ctx context.Context, user *authdomain.User, domain string) (result *seodomain.SEOResult, existed bool, err error)
	ListResults(user *authdomain.User, search string, page, perPage int) (*dto.ResultListResponse, error)
	GetResult(user *authdomain.User, id string) (*seodomain.SEOResult, error)
	DeleteResult(id string) error
	AutocompleteDomains(user *authdomain.User, query string) ([]string, error)
}
