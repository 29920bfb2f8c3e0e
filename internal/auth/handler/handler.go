package handler

import (
	"errors"
	"net/http"

	"webforge_backend/internal/auth/service"
	"webforge_backend/internal/auth/transport"
	"webforge_backend/platform/httpkit"
	"webforge_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler handles HTTP requests for authentication
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new auth handler
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterPublicRoutes registers login, refresh and logout
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup, loginLimiter gin.HandlerFunc) {
	if loginLimiter != nil {
		rg.POST("/login", loginLimiter, h.Login)
	} else {
		rg.POST("/login", h.Login)
	}
	rg.POST("/refresh", h.Refresh)
	rg.POST("/logout", h.Logout)
}

// RegisterProtectedRoutes registers routes requiring a valid access token
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", h.Me)
}

// Login handles POST /api/v1/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req transport.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}
	httpkit.OK(c, result)
}

// Refresh handles POST /api/v1/auth/refresh
func (h *Handler) Refresh(c *gin.Context) {
	var req transport.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}
	httpkit.OK(c, result)
}

// Logout handles POST /api/v1/auth/logout
func (h *Handler) Logout(c *gin.Context) {
	var req transport.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	if err := h.svc.Logout(c.Request.Context(), req.RefreshToken); httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"message": "logged out"})
}

// Me handles GET /api/v1/auth/me
func (h *Handler) Me(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	result, err := h.svc.Me(c.Request.Context(), identity.UserID())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

func (h *Handler) handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		httpkit.Error(c, http.StatusUnauthorized, "invalid email or password", nil)
	case errors.Is(err, service.ErrTokenExpired):
		httpkit.Error(c, http.StatusUnauthorized, "session expired, please log in again", nil)
	case errors.Is(err, service.ErrTokenInvalid):
		httpkit.Error(c, http.StatusUnauthorized, "invalid session", nil)
	default:
		httpkit.HandleError(c, err)
	}
}
