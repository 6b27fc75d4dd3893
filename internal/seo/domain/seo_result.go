package domain

import (
	"time"

	authdomain "seoprofil-backend/internal/auth/domain"
)

// SEOResult is one stored analysis of a domain. The unique index on Domain
// is the backstop against two concurrent analyses of the same domain.
type SEOResult struct {
	ID               string    `json:"id" gorm:"primaryKey"`
	Domain           string    `json:"domain" gorm:"uniqueIndex;not null"`
	ShortDescription string    `json:"short_description"`
	LongDescription  string    `json:"long_description"`
	Keywords         string    `json:"keywords"`
	OpeningHours     string    `json:"opening_hours"`
	CompanyInfo      string    `json:"company_info"`
	RawResponse      string    `json:"raw_response"` // Full model completion, kept for audit
	CreatedAt        time.Time `json:"created_at"`
	UserID           string    `json:"user_id" gorm:"index;not null"`

	User *authdomain.User `json:"-" gorm:"foreignKey:UserID"`
}

// ParsedSections holds the five sections recovered from a model completion.
// Sections that could not be matched stay empty; that is not an error.
type ParsedSections struct {
	ShortDescription string
	LongDescription  string
	Keywords         string
	OpeningHours     string
	CompanyInfo      string
}
