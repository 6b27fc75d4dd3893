package repository

import seodomain "seoprofil-backend/internal/seo/domain"

// ListFilter narrows the paginated result listing.
type ListFilter struct {
	UserID  string // empty means all users (admin view)
	Search  string // substring match on domain
	Page    int
	PerPage int
}

// SEOResultRepository defines persistence operations for analysis results
type SEOResultRepository interface {
	Create(result *seodomain.SEOResult) error
	FindByDomain(domain string) (*seodomain.SEOResult, error)
	FindByID(id string) (*seodomain.SEOResult, error)
	List(filter ListFilter) ([]*seodomain.SEOResult, int64, error)
	Delete(id string) error
	DistinctDomains(userID string, limit int) ([]string, error)
}
