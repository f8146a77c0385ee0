package dto

import (
	"time"

	"github.com/fritz-immanuel/luxtrack/internal/model"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegisterRequest struct {
	Email    string     `json:"email"     validate:"required,email"`
	Password string     `json:"password"  validate:"required,min=6"`
	FullName string     `json:"full_name" validate:"required,min=2,max=120"`
	Role     model.Role `json:"role"      validate:"omitempty,oneof=admin staff"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// UserResponse is the only user projection that leaves the API.
// It deliberately has no password field.
type UserResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	Role      model.Role `json:"role"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	User         UserResponse `json:"user"`
}
