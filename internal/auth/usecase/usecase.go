package usecase

import (
	authdomain "seoprofil-backend/internal/auth/domain"
	authdto "seoprofil-backend/internal/auth/dto"
)

// AuthUsecase covers authentication plus the admin-only user management
type AuthUsecase interface {
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	Register(req *authdto.RegisterRequest) (*authdomain.User, error)
	RefreshToken(refreshToken string) (*authdto.TokenResponse, error)
	Logout(refreshToken string) error
	ValidateToken(tokenString string) (*authdomain.User, error)
	EnsureDefaultAdmin(username, email, password string) error

	ListUsers() ([]*authdomain.User, error)
	GetUser(id string) (*authdomain.User, error)
	UpdateUser(id string, req *authdto.UpdateUserRequest) (*authdomain.User, error)
	DeleteUser(id string) error
}
