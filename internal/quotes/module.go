// Package quotes provides the quote request domain module.
package quotes

import (
	"webforge_backend/internal/events"
	apphttp "webforge_backend/internal/http"
	"webforge_backend/internal/quotes/handler"
	"webforge_backend/internal/quotes/repository"
	"webforge_backend/internal/quotes/service"
	"webforge_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module represents the quotes domain module
type Module struct {
	handler *handler.Handler
	Service *service.Service
}

// NewModule creates a new quotes module with all dependencies wired
func NewModule(pool *pgxpool.Pool, val *validator.Validator, catalogs service.CatalogProvider, bus events.Bus) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, catalogs, bus)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		Service: svc,
	}
}

// Name returns the module name for logging
func (m *Module) Name() string {
	return "quotes"
}

// RegisterRoutes registers the module's routes
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterPublicRoutes(ctx.Public.Group("/quotes"), ctx.FormRateLimiter)
	m.handler.RegisterAdminRoutes(ctx.Admin.Group("/quotes"))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
