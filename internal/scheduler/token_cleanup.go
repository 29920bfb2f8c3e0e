package scheduler

import (
	"context"
	"time"

	authrepo "webforge_backend/internal/auth/repository"
	"webforge_backend/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultTokenCleanupInterval = time.Hour

// TokenCleanup periodically removes expired refresh tokens.
type TokenCleanup struct {
	repo     *authrepo.Repository
	log      *logger.Logger
	interval time.Duration
}

func NewTokenCleanup(pool *pgxpool.Pool, log *logger.Logger, interval time.Duration) *TokenCleanup {
	if interval <= 0 {
		interval = defaultTokenCleanupInterval
	}

	return &TokenCleanup{
		repo:     authrepo.New(pool),
		log:      log,
		interval: interval,
	}
}

func (c *TokenCleanup) Run(ctx context.Context) {
	if c == nil || c.repo == nil {
		return
	}

	c.cleanup(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.cleanup(ctx)
		}
	}
}

func (c *TokenCleanup) cleanup(ctx context.Context) {
	deleted, err := c.repo.DeleteExpiredRefreshTokens(ctx, time.Now())
	if err != nil {
		c.log.Warn("refresh token cleanup failed", "error", err)
		return
	}

	if deleted > 0 {
		c.log.Info("refresh token cleanup deleted expired tokens", "deleted", deleted)
	}
}
