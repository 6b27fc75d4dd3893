package delivery

import (
	"net/http"

	authdto "seoprofil-backend/internal/auth/dto"
	"seoprofil-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// All user-management routes are admin only; AdminMiddleware enforces that.

// GET /api/users
func (h *AuthHandler) GetUsers(c *gin.Context) {
	users, err := h.authUsecase.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// POST /api/users
func (h *AuthHandler) CreateUser(c *gin.Context) {
	// Same semantics as register, kept as a separate route for the admin UI
	h.Register(c)
}

// GET /api/users/:id
func (h *AuthHandler) GetUser(c *gin.Context) {
	user, err := h.authUsecase.GetUser(c.Param("id"))
	if err != nil {
		if err == usecase.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

// PUT /api/users/:id
func (h *AuthHandler) UpdateUser(c *gin.Context) {
	var req authdto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authUsecase.UpdateUser(c.Param("id"), &req)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case usecase.ErrUsernameTaken, usecase.ErrEmailTaken:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, user)
}

// DELETE /api/users/:id
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	if err := h.authUsecase.DeleteUser(c.Param("id")); err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case usecase.ErrLastAdmin:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
