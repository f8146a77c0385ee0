package handler

import (
	"net/http"

	"github.com/fritz-immanuel/luxtrack/internal/dto"
	"github.com/fritz-immanuel/luxtrack/internal/middleware"
	"github.com/fritz-immanuel/luxtrack/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register godoc
// @Summary  Create a user account (admin only)
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    request body dto.RegisterRequest true "New user"
// @Success  200 {object} dto.UserResponse
// @Router   /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	user, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Login godoc
// @Summary  Exchange credentials for an access/refresh token pair
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    request body dto.LoginRequest true "Credentials"
// @Success  200 {object} dto.TokenResponse
// @Router   /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	tokens, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tokens)
}

// Refresh godoc
// @Summary  Exchange a refresh token for a fresh token pair
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    request body dto.RefreshRequest true "Refresh token"
// @Success  200 {object} dto.TokenResponse
// @Router   /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindAndValidate(c, &req) {
		return
	}
	tokens, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tokens)
}

// Me godoc
// @Summary  Return the authenticated user
// @Tags     auth
// @Produce  json
// @Success  200 {object} dto.UserResponse
// @Router   /api/users/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	u := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	})
}

// ListUsers godoc
// @Summary  List all users (admin only)
// @Tags     users
// @Produce  json
// @Success  200 {array} dto.UserResponse
// @Router   /api/users [get]
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
