// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// ComparisonCache defines the interface for memoizing computed comparison
// results keyed by the full input tuple. Cache failures must degrade to
// recomputation, never to an error surfaced to the caller.
type ComparisonCache interface {
	// Get returns the cached payload for the key, or (nil, nil) on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores the payload under the key with the given TTL.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}
