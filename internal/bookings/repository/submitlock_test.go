package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLock(t *testing.T, ttl time.Duration) (*SubmitLock, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSubmitLock(client, ttl), mr
}

func TestSubmitLock_SecondAcquireBlocked(t *testing.T) {
	lock, _ := newTestLock(t, 30*time.Second)
	ctx := context.Background()

	ok, err := lock.Acquire(ctx, "key-1")
	if err != nil || !ok {
		t.Fatalf("first acquire: ok=%v err=%v", ok, err)
	}

	ok, err = lock.Acquire(ctx, "key-1")
	if err != nil {
		t.Fatalf("second acquire: %v", err)
	}
	if ok {
		t.Fatal("second acquire succeeded while lock held")
	}
}

func TestSubmitLock_IndependentKeys(t *testing.T) {
	lock, _ := newTestLock(t, 30*time.Second)
	ctx := context.Background()

	if ok, _ := lock.Acquire(ctx, "key-a"); !ok {
		t.Fatal("acquire key-a failed")
	}
	if ok, _ := lock.Acquire(ctx, "key-b"); !ok {
		t.Fatal("lock on key-a blocked unrelated key-b")
	}
}

func TestSubmitLock_ReleaseReopens(t *testing.T) {
	lock, _ := newTestLock(t, 30*time.Second)
	ctx := context.Background()

	if ok, _ := lock.Acquire(ctx, "key-1"); !ok {
		t.Fatal("acquire failed")
	}
	if err := lock.Release(ctx, "key-1"); err != nil {
		t.Fatalf("release: %v", err)
	}
	if ok, _ := lock.Acquire(ctx, "key-1"); !ok {
		t.Fatal("acquire after release failed")
	}
}

func TestSubmitLock_ExpiresAfterTTL(t *testing.T) {
	lock, mr := newTestLock(t, 10*time.Second)
	ctx := context.Background()

	if ok, _ := lock.Acquire(ctx, "key-1"); !ok {
		t.Fatal("acquire failed")
	}

	mr.FastForward(11 * time.Second)

	if ok, _ := lock.Acquire(ctx, "key-1"); !ok {
		t.Fatal("lock survived its TTL")
	}
}
