// internal/workers/tasks.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
)

const (
	TypeCacheInvalidate = "cache:invalidate"
	TypeMeetingsSync    = "meetings:sync"
)

// Queue names
const (
	QueueCritical = "critical"
	QueueDefault  = "default"
)

// InvalidatePayload is the payload of a cache:invalidate task
type InvalidatePayload struct {
	Patterns []string `json:"patterns"`
}

// NewCacheInvalidateTask builds a retryable invalidation task
func NewCacheInvalidateTask(patterns []string, maxRetry int) (*asynq.Task, error) {
	payload, err := json.Marshal(InvalidatePayload{Patterns: patterns})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal invalidate payload: %w", err)
	}
	return asynq.NewTask(TypeCacheInvalidate, payload,
		asynq.MaxRetry(maxRetry),
		asynq.Queue(QueueCritical),
		asynq.Timeout(30*time.Second),
	), nil
}

// NewMeetingsSyncTask builds the periodic live meeting sync task
func NewMeetingsSyncTask() *asynq.Task {
	return asynq.NewTask(TypeMeetingsSync, nil,
		asynq.MaxRetry(0),
		asynq.Queue(QueueDefault),
		asynq.Timeout(time.Minute),
	)
}

// Enqueuer is the part of *asynq.Client the queue needs
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// InvalidationQueue hands failed invalidations to the worker
type InvalidationQueue struct {
	client   Enqueuer
	maxRetry int
}

var _ ports.InvalidationQueue = (*InvalidationQueue)(nil)

// NewInvalidationQueue creates a queue backed by an asynq client
func NewInvalidationQueue(client Enqueuer, maxRetry int) *InvalidationQueue {
	return &InvalidationQueue{client: client, maxRetry: maxRetry}
}

// EnqueueInvalidation schedules patterns for another deletion attempt
func (q *InvalidationQueue) EnqueueInvalidation(ctx context.Context, patterns []string) error {
	if len(patterns) == 0 {
		return nil
	}

	task, err := NewCacheInvalidateTask(patterns, q.maxRetry)
	if err != nil {
		return err
	}
	if _, err := q.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue invalidation: %w", err)
	}
	return nil
}
