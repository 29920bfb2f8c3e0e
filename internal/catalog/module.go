// Package catalog provides the pricing catalog domain module.
package catalog

import (
	"webforge_backend/internal/catalog/handler"
	"webforge_backend/internal/catalog/repository"
	"webforge_backend/internal/catalog/service"
	apphttp "webforge_backend/internal/http"
	"webforge_backend/internal/storage"
	"webforge_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module represents the catalog domain module
type Module struct {
	handler *handler.Handler
	Service *service.Service
}

// NewModule creates a new catalog module with all dependencies wired. The
// storage service may be nil when MinIO is not configured.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, store storage.Service, assetBucket string) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, store, assetBucket)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		Service: svc,
	}
}

// Name returns the module name for logging
func (m *Module) Name() string {
	return "catalog"
}

// RegisterRoutes registers the module's routes
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterPublicRoutes(ctx.Public.Group("/catalog"))
	m.handler.RegisterAdminRoutes(ctx.Admin.Group("/catalog"))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
