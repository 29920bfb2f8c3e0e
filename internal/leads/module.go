// Package leads provides the contact-form lead domain module.
package leads

import (
	"webforge_backend/internal/events"
	apphttp "webforge_backend/internal/http"
	"webforge_backend/internal/leads/handler"
	"webforge_backend/internal/leads/repository"
	"webforge_backend/internal/leads/service"
	"webforge_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module represents the leads domain module
type Module struct {
	handler *handler.Handler
	Service *service.Service
}

// NewModule creates a new leads module with all dependencies wired
func NewModule(pool *pgxpool.Pool, val *validator.Validator, bus events.Bus) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, bus)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		Service: svc,
	}
}

// Name returns the module name for logging
func (m *Module) Name() string {
	return "leads"
}

// RegisterRoutes registers the module's routes
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterPublicRoutes(ctx.Public.Group("/leads"), ctx.FormRateLimiter)
	m.handler.RegisterAdminRoutes(ctx.Admin.Group("/leads"))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
