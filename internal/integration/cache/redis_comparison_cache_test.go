package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *redisComparisonCache) {
	t.Helper()

	server, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(server.Close)

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return server, &redisComparisonCache{client: client}
}

func TestRedisComparisonCache(t *testing.T) {
	t.Run("round-trips a payload", func(t *testing.T) {
		_, cache := newTestCache(t)

		key := "trends:comparison:30d:mom:revenue:all:2025-03-15"
		if err := cache.Set(context.Background(), key, []byte(`{"total":"450"}`), time.Minute); err != nil {
			t.Fatalf("unexpected set error: %v", err)
		}

		payload, err := cache.Get(context.Background(), key)
		if err != nil {
			t.Fatalf("unexpected get error: %v", err)
		}
		if string(payload) != `{"total":"450"}` {
			t.Errorf("unexpected payload: %s", payload)
		}
	})

	t.Run("miss returns nil payload and nil error", func(t *testing.T) {
		_, cache := newTestCache(t)

		payload, err := cache.Get(context.Background(), "trends:comparison:missing")
		if err != nil {
			t.Fatalf("a miss must not be an error, got %v", err)
		}
		if payload != nil {
			t.Errorf("expected nil payload, got %s", payload)
		}
	})

	t.Run("entry expires after its ttl", func(t *testing.T) {
		server, cache := newTestCache(t)

		key := "trends:comparison:7d:yoy:revenue:all:2025-03-15"
		if err := cache.Set(context.Background(), key, []byte("cached"), time.Minute); err != nil {
			t.Fatalf("unexpected set error: %v", err)
		}

		server.FastForward(2 * time.Minute)

		payload, err := cache.Get(context.Background(), key)
		if err != nil {
			t.Fatalf("unexpected get error: %v", err)
		}
		if payload != nil {
			t.Errorf("expected expired entry to miss, got %s", payload)
		}
	})
}
