// internal/workers/meeting_sync_processor.go
package workers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
)

const syncConcurrency = 4

// MeetingChecker asks the BBB server whether a meeting is running. The raw
// ports.BBBClient is used so the answer never comes from the cache.
type MeetingChecker interface {
	IsMeetingRunning(ctx context.Context, meetingID string) (bool, error)
}

// MeetingEnder runs the meeting-ended path, including its cache sweeps
type MeetingEnder interface {
	MeetingEndedCallback(ctx context.Context, q ports.DBTX, meetingID string, eventID *uuid.UUID) (*domain.Event, error)
}

// MeetingSyncProcessor ends live events whose BBB meeting has stopped
type MeetingSyncProcessor struct {
	events  ports.EventRepository
	checker MeetingChecker
	ender   MeetingEnder
	db      ports.DBTX
	logger  *slog.Logger
}

// NewMeetingSyncProcessor creates a new meeting sync processor
func NewMeetingSyncProcessor(events ports.EventRepository, checker MeetingChecker, ender MeetingEnder, db ports.DBTX, logger *slog.Logger) *MeetingSyncProcessor {
	return &MeetingSyncProcessor{
		events:  events,
		checker: checker,
		ender:   ender,
		db:      db,
		logger:  logger.With(slog.String("processor", "meetings_sync")),
	}
}

// SyncResult summarises one sync pass
type SyncResult struct {
	Checked int
	Ended   int
}

// ProcessSync handles meetings:sync tasks
func (p *MeetingSyncProcessor) ProcessSync(ctx context.Context, t *asynq.Task) error {
	_, err := p.Sync(ctx)
	return err
}

// Sync checks every live event's meeting and ends the ones that stopped.
// Check failures skip the event; it is checked again on the next pass.
func (p *MeetingSyncProcessor) Sync(ctx context.Context) (SyncResult, error) {
	live, err := p.events.List(ctx, p.db, domain.EventFilter{Status: domain.EventLive})
	if err != nil {
		return SyncResult{}, fmt.Errorf("failed to list live events: %w", err)
	}

	var (
		mu     sync.Mutex
		result SyncResult
		errs   []error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(syncConcurrency)
	for _, event := range live {
		if !event.MeetingCreated || event.MeetingID == "" {
			continue
		}
		g.Go(func() error {
			running, err := p.checker.IsMeetingRunning(gctx, event.MeetingID)
			mu.Lock()
			result.Checked++
			mu.Unlock()
			if err != nil {
				p.logger.WarnContext(gctx, "meeting status check failed",
					slog.String("meeting_id", event.MeetingID),
					slog.String("error", err.Error()))
				return nil
			}
			if running {
				return nil
			}

			eventID := event.ID
			if _, err := p.ender.MeetingEndedCallback(gctx, p.db, event.MeetingID, &eventID); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("meeting %s: %w", event.MeetingID, err))
				mu.Unlock()
				return nil
			}

			mu.Lock()
			result.Ended++
			mu.Unlock()
			p.logger.InfoContext(gctx, "ended event for stopped meeting",
				slog.String("event_id", event.ID.String()),
				slog.String("meeting_id", event.MeetingID))
			return nil
		})
	}
	_ = g.Wait()

	p.logger.InfoContext(ctx, "meeting sync completed",
		slog.Int("live", len(live)),
		slog.Int("checked", result.Checked),
		slog.Int("ended", result.Ended),
		slog.Int("failed", len(errs)))

	if len(errs) > 0 {
		return result, fmt.Errorf("failed to end %d meetings: %w", len(errs), errors.Join(errs...))
	}
	return result, nil
}
