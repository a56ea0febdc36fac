// internal/workers/invalidation_processor.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
)

// PatternRetrier re-runs pattern deletions and reports the ones that failed.
// *cache.Invalidator implements it.
type PatternRetrier interface {
	Retry(ctx context.Context, patterns []string) []string
}

// InvalidationProcessor handles cache:invalidate tasks
type InvalidationProcessor struct {
	retrier PatternRetrier
	logger  *slog.Logger
}

// NewInvalidationProcessor creates a new invalidation processor
func NewInvalidationProcessor(retrier PatternRetrier, logger *slog.Logger) *InvalidationProcessor {
	return &InvalidationProcessor{
		retrier: retrier,
		logger:  logger.With(slog.String("processor", "cache_invalidate")),
	}
}

// ProcessInvalidate deletes the task's patterns. It fails while any pattern
// still cannot be deleted so asynq retries with backoff.
func (p *InvalidationProcessor) ProcessInvalidate(ctx context.Context, t *asynq.Task) error {
	var payload InvalidatePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}
	if len(payload.Patterns) == 0 {
		return nil
	}

	failed := p.retrier.Retry(ctx, payload.Patterns)
	if len(failed) > 0 {
		p.logger.WarnContext(ctx, "cache invalidation retry incomplete",
			slog.Any("failed", failed),
			slog.Int("total", len(payload.Patterns)))
		return fmt.Errorf("failed to delete %d of %d patterns", len(failed), len(payload.Patterns))
	}

	p.logger.InfoContext(ctx, "cache invalidation retry completed",
		slog.Any("patterns", payload.Patterns))
	return nil
}
