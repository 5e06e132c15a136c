package cache

import (
	"context"
	"time"
)

// Cache is the contract of the read-through cache layer.
// Swappable between Redis and the no-op implementation.
type Cache interface {
	// Get unmarshals a cached value into dest.
	// found = false on a miss, dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value with a TTL
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern (e.g. "works:search:*")
	DeletePattern(ctx context.Context, pattern string) error

	Ping(ctx context.Context) error
}
