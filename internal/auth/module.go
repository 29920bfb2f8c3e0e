// Package auth provides staff authentication with JWT access tokens and
// rotating refresh tokens.
package auth

import (
	"webforge_backend/internal/auth/handler"
	"webforge_backend/internal/auth/repository"
	"webforge_backend/internal/auth/service"
	apphttp "webforge_backend/internal/http"
	"webforge_backend/platform/config"
	"webforge_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module represents the auth domain module
type Module struct {
	handler *handler.Handler
	Service *service.Service
}

// NewModule creates a new auth module with all dependencies wired
func NewModule(pool *pgxpool.Pool, val *validator.Validator, cfg config.AuthServiceConfig) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, cfg)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		Service: svc,
	}
}

// Name returns the module name for logging
func (m *Module) Name() string {
	return "auth"
}

// RegisterRoutes registers the module's routes
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterPublicRoutes(ctx.V1.Group("/auth"), ctx.FormRateLimiter)
	m.handler.RegisterProtectedRoutes(ctx.Protected.Group("/auth"))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
