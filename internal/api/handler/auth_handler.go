package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"summer-success/tracker/internal/dto"
	"summer-success/tracker/internal/service"
	"summer-success/tracker/pkg/response"
)

// AuthHandler parent session endpoints
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler creates an AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login exchanges the parent password for an access token
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, 11001, "password is incorrect")
		case errors.Is(err, service.ErrAuthNotConfigured):
			response.Error(c, http.StatusServiceUnavailable, 11002, "parent login is not configured")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Logout revokes the current token
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	jti, ok := MustGetTokenID(c)
	if !ok {
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), jti, tokenExpiry(c)); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
