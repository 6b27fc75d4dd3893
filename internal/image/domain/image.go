package domain

import (
	"time"

	authdomain "seoprofil-backend/internal/auth/domain"
)

const (
	TypeHeader = "header"
	TypeKachel = "kachel"
)

// GeneratedImage records one image produced for a user, including the full
// prompt that was sent so a generation can be reproduced.
type GeneratedImage struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	UserID     string    `json:"user_id" gorm:"index;not null"`
	UserInput  string    `json:"user_input" gorm:"not null"`
	ImageType  string    `json:"image_type" gorm:"size:20;not null"`
	ImageURL   string    `json:"image_url" gorm:"size:500;not null"`
	PromptUsed string    `json:"prompt_used"`
	ImageSize  string    `json:"image_size" gorm:"size:20"`
	CreatedAt  time.Time `json:"created_at"`

	User *authdomain.User `json:"-" gorm:"foreignKey:UserID"`
}

// ValidType reports whether t is a supported image type.
func ValidType(t string) bool {
	return t == TypeHeader || t == TypeKachel
}
