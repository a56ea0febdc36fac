// internal/core/ports/cache.go
package ports

import (
	"context"
	"time"
)

// CacheStore is the networked key-value store behind the read-through layer.
// Implementations never return faults: a failed Get is a miss and failed
// writes report false.
type CacheStore interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) bool
	Delete(ctx context.Context, key string) bool
	// DeletePattern removes every key matching a glob pattern such as "events_all:*".
	DeletePattern(ctx context.Context, pattern string) bool
	HealthCheck(ctx context.Context) bool
	Enabled() bool
	Close()
}

// InvalidationQueue defers pattern deletions that failed so they can be retried
type InvalidationQueue interface {
	EnqueueInvalidation(ctx context.Context, patterns []string) error
}
