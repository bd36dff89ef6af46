package dto

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/danakita/cms-backend/models"
)

// TokenClaims represents our custom JWT claims
type TokenClaims struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Name     *string `json:"name,omitempty"`
	Role     string  `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the login success body; the same token also lands in
// the auth_token cookie.
type LoginResponse struct {
	Success bool              `json:"success"`
	User    models.PublicUser `json:"user"`
	Token   string            `json:"token"`
}

// SessionResponse represents the response of GET /auth/session
type SessionResponse struct {
	Authenticated bool               `json:"authenticated"`
	User          *models.PublicUser `json:"user,omitempty"`
}

// ChangePasswordRequest represents the change-password payload
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}
