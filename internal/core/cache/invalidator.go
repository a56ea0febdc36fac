// internal/core/cache/invalidator.go
package cache

import (
	"context"
	"log/slog"

	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
)

// Invalidator deletes pattern sets after writes. Patterns the store fails
// to delete are handed to the retry queue when one is configured.
type Invalidator struct {
	store  ports.CacheStore
	retry  ports.InvalidationQueue
	logger *slog.Logger
}

// NewInvalidator creates an invalidator. retry may be nil.
func NewInvalidator(store ports.CacheStore, retry ports.InvalidationQueue, logger *slog.Logger) *Invalidator {
	return &Invalidator{
		store:  store,
		retry:  retry,
		logger: logger.With(slog.String("component", "invalidator")),
	}
}

// Invalidate deletes every pattern and returns the ones that failed
func (i *Invalidator) Invalidate(ctx context.Context, patterns ...string) []string {
	if !i.store.Enabled() {
		return nil
	}

	var failed []string
	for _, pattern := range patterns {
		if !i.store.DeletePattern(ctx, pattern) {
			failed = append(failed, pattern)
		}
	}

	if len(failed) == 0 {
		i.logger.DebugContext(ctx, "cache invalidated", slog.Any("patterns", patterns))
		return nil
	}

	i.logger.WarnContext(ctx, "failed to invalidate cache patterns",
		slog.Any("patterns", failed))
	if i.retry != nil {
		if err := i.retry.EnqueueInvalidation(context.WithoutCancel(ctx), failed); err != nil {
			i.logger.ErrorContext(ctx, "failed to enqueue invalidation retry",
				slog.Any("patterns", failed),
				slog.String("error", err.Error()))
		}
	}
	return failed
}

// Retry re-runs deletions without re-enqueueing. Used by the retry worker.
func (i *Invalidator) Retry(ctx context.Context, patterns []string) []string {
	var failed []string
	for _, pattern := range patterns {
		if !i.store.DeletePattern(ctx, pattern) {
			failed = append(failed, pattern)
		}
	}
	return failed
}
