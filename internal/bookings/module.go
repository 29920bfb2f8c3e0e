// Package bookings provides the booking wizard domain module.
package bookings

import (
	"webforge_backend/internal/bookings/handler"
	"webforge_backend/internal/bookings/repository"
	"webforge_backend/internal/bookings/service"
	apphttp "webforge_backend/internal/http"
	"webforge_backend/internal/events"
	"webforge_backend/internal/scheduler"
	"webforge_backend/platform/config"
	"webforge_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module represents the bookings domain module
type Module struct {
	handler *handler.Handler
	Service *service.Service
}

// NewModule creates a new bookings module with all dependencies wired. The
// lock and reminder scheduler may be nil when redis is not configured.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, lock service.Locker, bus events.Bus, reminders scheduler.ReminderScheduler, cfg config.BookingConfig) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, lock, bus, reminders, cfg)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		Service: svc,
	}
}

// Name returns the module name for logging
func (m *Module) Name() string {
	return "bookings"
}

// RegisterRoutes registers the module's routes
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterPublicRoutes(ctx.Public.Group("/bookings"), ctx.FormRateLimiter)
	m.handler.RegisterAdminRoutes(ctx.Admin.Group("/bookings"))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
