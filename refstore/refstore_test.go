package refstore

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestMemoryStoreRejectsDuplicate(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	if err := store.Register(ctx, "ref-1"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := store.Register(ctx, "ref-1"); err != ErrDuplicate {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if err := store.Register(ctx, "ref-2"); err != nil {
		t.Fatalf("distinct reference rejected: %v", err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	current := time.Now()
	store.now = func() time.Time { return current }

	ctx := context.Background()
	if err := store.Register(ctx, "ref-1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	current = current.Add(2 * time.Minute)
	if err := store.Register(ctx, "ref-1"); err != nil {
		t.Fatalf("expected expired reference to be accepted again, got %v", err)
	}
}

func setupRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStoreWithClient(client, ttl)
	t.Cleanup(func() { store.Close() })

	return store, mr
}

func TestRedisStoreRejectsDuplicate(t *testing.T) {
	store, _ := setupRedisStore(t, time.Hour)
	ctx := context.Background()

	if err := store.Register(ctx, "ref-1"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := store.Register(ctx, "ref-1"); err != ErrDuplicate {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestRedisStoreTTL(t *testing.T) {
	store, mr := setupRedisStore(t, time.Minute)
	ctx := context.Background()

	if err := store.Register(ctx, "ref-1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if err := store.Register(ctx, "ref-1"); err != nil {
		t.Fatalf("expected expired reference to be accepted again, got %v", err)
	}
}
