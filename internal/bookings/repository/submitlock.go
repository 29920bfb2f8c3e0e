package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const submitLockPrefix = "bookings:submit:"

// SubmitLock serializes wizard submits per idempotency key. A double-click
// fires two identical requests within milliseconds; the database conflict
// target catches duplicates eventually, but the lock keeps the second request
// from racing the first one's slot check.
type SubmitLock struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSubmitLock creates a lock with the given hold time. The TTL bounds how
// long a crashed request can keep a key locked.
func NewSubmitLock(client *redis.Client, ttl time.Duration) *SubmitLock {
	return &SubmitLock{client: client, ttl: ttl}
}

// Acquire takes the lock for a key. Returns false when another request
// already holds it.
func (l *SubmitLock) Acquire(ctx context.Context, key string) (bool, error) {
	ok, err := l.client.SetNX(ctx, submitLockPrefix+key, "1", l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire submit lock: %w", err)
	}
	return ok, nil
}

// Release frees the lock early instead of waiting out the TTL.
func (l *SubmitLock) Release(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, submitLockPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to release submit lock: %w", err)
	}
	return nil
}
