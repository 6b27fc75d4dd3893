package repository

import authdomain "seoprofil-backend/internal/auth/domain"

// UserRepository defines persistence operations for users and refresh tokens
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByID(id string) (*authdomain.User, error)
	FindByUsername(username string) (*authdomain.User, error)
	FindByEmail(email string) (*authdomain.User, error)
	FindAll() ([]*authdomain.User, error)
	Update(user *authdomain.User) error
	Delete(id string) error
	CountByRole(role string) (int64, error)

	SaveRefreshToken(token *authdomain.RefreshToken) error
	FindRefreshToken(token string) (*authdomain.RefreshToken, error)
	DeleteRefreshToken(token string) error
	DeleteRefreshTokensByUser(userID string) error
}
