// Package cache implements the comparison cache on Redis.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/salon-pulse/backend/internal/application/adapter"
)

// redisComparisonCache implements the adapter.ComparisonCache interface.
type redisComparisonCache struct {
	client *redis.Client
}

// NewRedisComparisonCache creates a new Redis-backed comparison cache.
func NewRedisComparisonCache(client *redis.Client) adapter.ComparisonCache {
	return &redisComparisonCache{
		client: client,
	}
}

// Get returns the cached payload for the key, or (nil, nil) on a miss.
func (c *redisComparisonCache) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return payload, nil
}

// Set stores the payload under the key with the given TTL.
func (c *redisComparisonCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, payload, ttl).Err()
}
