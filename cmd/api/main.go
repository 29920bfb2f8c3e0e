package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"webforge_backend/internal/auth"
	"webforge_backend/internal/bookings"
	bookingrepo "webforge_backend/internal/bookings/repository"
	bookingsvc "webforge_backend/internal/bookings/service"
	"webforge_backend/internal/catalog"
	"webforge_backend/internal/events"
	apphttp "webforge_backend/internal/http"
	"webforge_backend/internal/http/router"
	"webforge_backend/internal/leads"
	"webforge_backend/internal/notification"
	"webforge_backend/internal/quotes"
	"webforge_backend/internal/scheduler"
	"webforge_backend/internal/storage"
	"webforge_backend/platform/config"
	"webforge_backend/platform/db"
	"webforge_backend/platform/logger"
	"webforge_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const submitLockTTL = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, "migrations")
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	submitLock, closeRedis := initSubmitLock(cfg, log)
	if closeRedis != nil {
		defer closeRedis()
	}

	reminderScheduler, closeScheduler := initReminderScheduler(cfg, log)
	if closeScheduler != nil {
		defer closeScheduler()
	}

	// Shared validator instance for dependency injection
	val := validator.New()

	storageSvc := initStorage(ctx, cfg, log)

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	// Notification module subscribes to domain events (not HTTP-facing)
	notificationModule := notification.NewModule(cfg, cfg, log)
	notificationModule.RegisterHandlers(eventBus)

	authModule := auth.NewModule(pool, val, cfg)
	catalogModule := catalog.NewModule(pool, val, storageSvc, cfg.GetMinioBucketCatalogAssets())

	if err := catalogModule.Service.SeedIfEmpty(ctx); err != nil {
		log.Error("failed to seed catalog", "error", err)
		panic("failed to seed catalog: " + err.Error())
	}

	quotesModule := quotes.NewModule(pool, val, catalogModule.Service, eventBus)
	bookingsModule := bookings.NewModule(pool, val, submitLock, eventBus, reminderScheduler, cfg)
	leadsModule := leads.NewModule(pool, val, eventBus)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   db.NewPoolAdapter(pool),
		EventBus: eventBus,
		Modules: []apphttp.Module{
			authModule,
			catalogModule,
			quotesModule,
			bookingsModule,
			leadsModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownCtx
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

// initSubmitLock builds the redis-backed submission lock. Bookings fall back
// to the database unique constraint alone when redis is not configured.
func initSubmitLock(cfg config.SchedulerConfig, log *logger.Logger) (bookingsvc.Locker, func()) {
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; booking submit lock disabled")
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.GetRedisURL())
	if err != nil {
		log.Error("invalid REDIS_URL; booking submit lock disabled", "error", err)
		return nil, nil
	}

	client := redis.NewClient(opt)
	lock := bookingrepo.NewSubmitLock(client, submitLockTTL)
	return lock, func() {
		_ = client.Close()
	}
}

func initReminderScheduler(cfg config.SchedulerConfig, log *logger.Logger) (scheduler.ReminderScheduler, func()) {
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; booking reminders disabled")
		return nil, nil
	}

	reminderClient, err := scheduler.NewClient(cfg)
	if err != nil {
		log.Error("failed to initialize reminder scheduler client", "error", err)
		return nil, nil
	}

	return reminderClient, func() {
		_ = reminderClient.Close()
	}
}

// initStorage builds the MinIO-backed asset storage. Asset endpoints respond
// with an explicit error when storage is not configured.
func initStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) storage.Service {
	if !cfg.IsMinIOEnabled() {
		log.Warn("MinIO not configured; catalog asset storage disabled")
		return nil
	}

	storageSvc, err := storage.NewMinIOService(cfg)
	if err != nil {
		log.Error("failed to initialize storage service", "error", err)
		panic("failed to initialize storage service: " + err.Error())
	}

	if err := withRetry(ctx, log, "ensure catalog assets bucket", 5, 2*time.Second, func() error {
		return storageSvc.EnsureBucketExists(ctx, cfg.GetMinioBucketCatalogAssets())
	}); err != nil {
		log.Error("failed to ensure storage bucket exists", "error", err, "bucket", cfg.GetMinioBucketCatalogAssets())
		panic("failed to ensure storage bucket exists: " + err.Error())
	}

	log.Info("storage service initialized", "catalogAssetsBucket", cfg.GetMinioBucketCatalogAssets())
	return storageSvc
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
