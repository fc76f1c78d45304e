package refstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "marzpay:ref:v1:"

// RedisStore shares reference tracking across processes.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to Redis at the given URL and verifies
// connectivity before returning the store.
func NewRedisStore(ctx context.Context, url string, ttl time.Duration) (*RedisStore, error) {
	if url == "" {
		return nil, fmt.Errorf("redis url is required")
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return NewRedisStoreWithClient(client, ttl), nil
}

// NewRedisStoreWithClient wraps an existing Redis client.
func NewRedisStoreWithClient(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Register reserves the reference with SETNX so only the first caller
// anywhere wins; later callers get ErrDuplicate until the TTL expires.
func (s *RedisStore) Register(ctx context.Context, reference string) error {
	ok, err := s.client.SetNX(ctx, keyPrefix+reference, "1", s.ttl).Result()
	if err != nil {
		return fmt.Errorf("reserve reference: %w", err)
	}
	if !ok {
		return ErrDuplicate
	}
	return nil
}

// Close releases the underlying Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
