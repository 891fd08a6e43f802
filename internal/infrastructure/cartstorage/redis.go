package cartstorage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/supertienda/storefront/internal/domain/shopping"
	"github.com/supertienda/storefront/internal/infrastructure/config"
)

// RedisSlot persists the cart blob under a single Redis key
type RedisSlot struct {
	client *redis.Client
	key    string
}

// NewRedisSlot creates a Redis-backed cart slot
func NewRedisSlot(cfg config.RedisConfig, key string) *RedisSlot {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &RedisSlot{client: client, key: key}
}

// NewRedisSlotWithClient creates a Redis-backed cart slot using an existing client
func NewRedisSlotWithClient(client *redis.Client, key string) *RedisSlot {
	return &RedisSlot{client: client, key: key}
}

// Read returns the stored cart blob. A missing key is not an error.
func (s *RedisSlot) Read(ctx context.Context) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading cart key: %w", err)
	}
	return data, true, nil
}

// Write replaces the stored cart blob. The key does not expire;
// the cart lives until it is overwritten.
func (s *RedisSlot) Write(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("writing cart key: %w", err)
	}
	return nil
}

// Close releases the underlying Redis connection
func (s *RedisSlot) Close() error {
	return s.client.Close()
}

var _ shopping.Slot = (*RedisSlot)(nil)
