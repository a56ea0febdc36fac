// internal/core/services/event.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
)

// EventConfig holds meeting defaults applied when an event goes live
type EventConfig struct {
	// MeetingEndedURL is the callback BBB calls when a meeting ends.
	MeetingEndedURL string
	Welcome         string
	Record          bool
}

// EventService handles event lifecycle logic
type EventService struct {
	events   ports.EventRepository
	users    ports.UserRepository
	channels ports.ChannelService
	bbb      ports.BBBService
	config   EventConfig
	now      func() time.Time
	logger   *slog.Logger
}

var _ ports.EventService = (*EventService)(nil)

// NewEventService creates a new event service
func NewEventService(
	events ports.EventRepository,
	users ports.UserRepository,
	channels ports.ChannelService,
	bbb ports.BBBService,
	config EventConfig,
	logger *slog.Logger,
) *EventService {
	return &EventService{
		events:   events,
		users:    users,
		channels: channels,
		bbb:      bbb,
		config:   config,
		now:      func() time.Time { return time.Now().UTC() },
		logger:   logger.With(slog.String("service", "events")),
	}
}

// ListEvents returns every event
func (s *EventService) ListEvents(ctx context.Context, q ports.DBTX) ([]*domain.Event, error) {
	return s.list(ctx, q, domain.EventFilter{})
}

// ListEventsByStatus returns events in status, optionally limited to the ones
// userID created or organizes
func (s *EventService) ListEventsByStatus(ctx context.Context, q ports.DBTX, status domain.EventStatus, userID *uuid.UUID) ([]*domain.Event, error) {
	if !status.Valid() {
		return nil, domain.Invalid("status", "must be one of scheduled, live, ended, cancelled")
	}
	return s.list(ctx, q, domain.EventFilter{Status: status, UserID: userID})
}

// ListUpcoming returns scheduled events
func (s *EventService) ListUpcoming(ctx context.Context, q ports.DBTX, userID *uuid.UUID) ([]*domain.Event, error) {
	return s.list(ctx, q, domain.EventFilter{Status: domain.EventScheduled, UserID: userID})
}

// ListPast returns ended events, most recent first
func (s *EventService) ListPast(ctx context.Context, q ports.DBTX, userID *uuid.UUID) ([]*domain.Event, error) {
	return s.list(ctx, q, domain.EventFilter{Status: domain.EventEnded, UserID: userID})
}

// ListLive returns events currently streaming
func (s *EventService) ListLive(ctx context.Context, q ports.DBTX, userID *uuid.UUID) ([]*domain.Event, error) {
	return s.list(ctx, q, domain.EventFilter{Status: domain.EventLive, UserID: userID})
}

// ListEventsByChannel returns the events of a channel
func (s *EventService) ListEventsByChannel(ctx context.Context, q ports.DBTX, channelID uuid.UUID) ([]*domain.Event, error) {
	return s.list(ctx, q, domain.EventFilter{ChannelID: &channelID})
}

func (s *EventService) list(ctx context.Context, q ports.DBTX, filter domain.EventFilter) ([]*domain.Event, error) {
	events, err := s.events.List(ctx, q, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// GetEventByID retrieves an event by ID
func (s *EventService) GetEventByID(ctx context.Context, q ports.DBTX, id uuid.UUID) (*domain.Event, error) {
	event, err := s.events.FindByID(ctx, q, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

// JoinEvent returns the join links of a live event. The moderator link is
// only handed to the creator and organizers.
func (s *EventService) JoinEvent(ctx context.Context, q ports.DBTX, id, userID uuid.UUID, fullName string) (*domain.JoinLinks, error) {
	event, err := s.GetEventByID(ctx, q, id)
	if err != nil {
		return nil, err
	}
	if event.Status != domain.EventLive || !event.MeetingCreated {
		return nil, fmt.Errorf("cannot join %s event: %w", event.Status, domain.ErrInvalidTransition)
	}

	name, err := s.displayName(ctx, q, userID, fullName)
	if err != nil {
		return nil, err
	}

	links := &domain.JoinLinks{
		EventID:     event.ID,
		MeetingID:   event.MeetingID,
		AttendeeURL: s.bbb.JoinURL(event.MeetingID, name, event.AttendeePW, userID.String()),
	}
	if event.IsOrganizer(userID) {
		links.ModeratorURL = s.bbb.JoinURL(event.MeetingID, name, event.ModeratorPW, userID.String())
	}
	return links, nil
}

// CreateEvent creates an event in the named channel, creating the channel
// when the user has none by that name.
func (s *EventService) CreateEvent(ctx context.Context, q ports.DBTX, input domain.EventCreate, userID uuid.UUID) (*domain.Event, error) {
	event := &domain.Event{
		Title:        input.Title,
		Description:  input.Description,
		Occurs:       input.Occurs,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		StartTime:    input.StartTime,
		Timezone:     input.Timezone,
		CreatorID:    userID,
		OrganizerIDs: dedupe(input.OrganizerIDs),
		Status:       domain.EventScheduled,
	}
	if err := event.Validate(); err != nil {
		return nil, err
	}
	channelName := strings.TrimSpace(input.ChannelName)
	if channelName == "" {
		return nil, domain.Invalid("channel_name", "is required")
	}
	event.PrepareForStorage()

	err := pgx.BeginFunc(ctx, q, func(tx pgx.Tx) error {
		channel, _, err := s.channels.GetOrCreateChannel(ctx, tx, channelName, userID)
		if err != nil {
			return err
		}
		event.ChannelID = channel.ID

		if err := s.checkOrganizers(ctx, tx, event.OrganizerIDs); err != nil {
			return err
		}
		return s.events.Create(ctx, tx, event)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.logger.InfoContext(ctx, "created event",
		slog.String("event_id", event.ID.String()),
		slog.String("meeting_id", event.MeetingID),
		slog.String("channel_id", event.ChannelID.String()))
	return event, nil
}

// StartEvent creates the BBB meeting on first start, moves the event to live
// and returns the creator's join links.
func (s *EventService) StartEvent(ctx context.Context, q ports.DBTX, id, userID uuid.UUID) (*domain.JoinLinks, error) {
	event, err := s.ownedByCreator(ctx, q, id, userID)
	if err != nil {
		return nil, err
	}
	if event.Status != domain.EventScheduled && event.Status != domain.EventLive {
		return nil, fmt.Errorf("cannot start %s event: %w", event.Status, domain.ErrInvalidTransition)
	}

	if !event.MeetingCreated {
		req := domain.CreateMeetingRequest{
			Name:            event.Title,
			MeetingID:       event.MeetingID,
			AttendeePW:      event.AttendeePW,
			ModeratorPW:     event.ModeratorPW,
			Welcome:         s.config.Welcome,
			Record:          s.config.Record,
			MeetingEndedURL: s.config.MeetingEndedURL,
		}
		if _, err := s.bbb.CreateMeeting(ctx, q, req, userID, &event.ID); err != nil {
			return nil, fmt.Errorf("failed to create meeting: %w", err)
		}
		event.MeetingCreated = true
	}

	if err := event.Start(s.now()); err != nil {
		return nil, err
	}
	if err := s.save(ctx, q, event); err != nil {
		return nil, err
	}

	name, err := s.displayName(ctx, q, userID, "")
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "started event",
		slog.String("event_id", event.ID.String()),
		slog.String("meeting_id", event.MeetingID))
	return &domain.JoinLinks{
		EventID:      event.ID,
		MeetingID:    event.MeetingID,
		AttendeeURL:  s.bbb.JoinURL(event.MeetingID, name, event.AttendeePW, userID.String()),
		ModeratorURL: s.bbb.JoinURL(event.MeetingID, name, event.ModeratorPW, userID.String()),
	}, nil
}

// EndEvent ends a live event. The BBB meeting is ended best effort.
func (s *EventService) EndEvent(ctx context.Context, q ports.DBTX, id, userID uuid.UUID) (*domain.Event, error) {
	event, err := s.ownedByCreator(ctx, q, id, userID)
	if err != nil {
		return nil, err
	}
	if err := event.End(s.now()); err != nil {
		return nil, err
	}

	if event.MeetingCreated {
		if err := s.bbb.EndMeeting(ctx, q, event.MeetingID, event.ModeratorPW); err != nil {
			s.logger.WarnContext(ctx, "failed to end meeting",
				slog.String("event_id", event.ID.String()),
				slog.String("meeting_id", event.MeetingID),
				slog.String("error", err.Error()))
		}
	}

	if err := s.save(ctx, q, event); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "ended event", slog.String("event_id", event.ID.String()))
	return event, nil
}

// EndEventByMeetingID ends the event that owns meetingID without an
// ownership check. An event that already ended is returned unchanged and a
// scheduled one is started and ended in the same step.
func (s *EventService) EndEventByMeetingID(ctx context.Context, q ports.DBTX, meetingID string) (*domain.Event, error) {
	event, err := s.events.FindByMeetingID(ctx, q, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to find event for meeting %s: %w", meetingID, err)
	}

	now := s.now()
	switch event.Status {
	case domain.EventEnded:
		return event, nil
	case domain.EventScheduled:
		if err := event.Start(now); err != nil {
			return nil, err
		}
	}
	if err := event.End(now); err != nil {
		return nil, err
	}
	if err := s.save(ctx, q, event); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "ended event from meeting",
		slog.String("event_id", event.ID.String()),
		slog.String("meeting_id", meetingID))
	return event, nil
}

// CancelEvent cancels a scheduled event
func (s *EventService) CancelEvent(ctx context.Context, q ports.DBTX, id, userID uuid.UUID) (*domain.Event, error) {
	event, err := s.ownedByCreator(ctx, q, id, userID)
	if err != nil {
		return nil, err
	}
	if err := event.Cancel(s.now()); err != nil {
		return nil, err
	}
	if err := s.save(ctx, q, event); err != nil {
		return nil, err
	}
	return event, nil
}

// UpdateEvent applies the set fields of update. Ended and cancelled events
// are frozen.
func (s *EventService) UpdateEvent(ctx context.Context, q ports.DBTX, id uuid.UUID, update domain.EventUpdate, userID uuid.UUID) (*domain.Event, error) {
	event, err := s.ownedByCreator(ctx, q, id, userID)
	if err != nil {
		return nil, err
	}
	if event.Status == domain.EventEnded || event.Status == domain.EventCancelled {
		return nil, fmt.Errorf("cannot update %s event: %w", event.Status, domain.ErrInvalidTransition)
	}

	update.Apply(event)
	event.OrganizerIDs = dedupe(event.OrganizerIDs)
	if err := event.Validate(); err != nil {
		return nil, err
	}
	event.UpdatedAt = s.now()

	err = pgx.BeginFunc(ctx, q, func(tx pgx.Tx) error {
		if update.OrganizerIDs != nil {
			if err := s.checkOrganizers(ctx, tx, event.OrganizerIDs); err != nil {
				return err
			}
		}
		return s.events.Update(ctx, tx, event)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return event, nil
}

// DeleteEvent removes an event, ending its meeting first when it is live
func (s *EventService) DeleteEvent(ctx context.Context, q ports.DBTX, id, userID uuid.UUID) error {
	event, err := s.ownedByCreator(ctx, q, id, userID)
	if err != nil {
		return err
	}

	if event.Status == domain.EventLive && event.MeetingCreated {
		if err := s.bbb.EndMeeting(ctx, q, event.MeetingID, event.ModeratorPW); err != nil {
			s.logger.WarnContext(ctx, "failed to end meeting of deleted event",
				slog.String("event_id", event.ID.String()),
				slog.String("error", err.Error()))
		}
	}

	if err := s.events.Delete(ctx, q, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	s.logger.InfoContext(ctx, "deleted event", slog.String("event_id", id.String()))
	return nil
}

func (s *EventService) save(ctx context.Context, q ports.DBTX, event *domain.Event) error {
	err := pgx.BeginFunc(ctx, q, func(tx pgx.Tx) error {
		return s.events.Update(ctx, tx, event)
	})
	if err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}
	return nil
}

func (s *EventService) ownedByCreator(ctx context.Context, q ports.DBTX, id, userID uuid.UUID) (*domain.Event, error) {
	event, err := s.GetEventByID(ctx, q, id)
	if err != nil {
		return nil, err
	}
	if event.CreatorID != userID {
		return nil, fmt.Errorf("event %s: %w", id, domain.ErrForbidden)
	}
	return event, nil
}

func (s *EventService) checkOrganizers(ctx context.Context, q ports.DBTX, ids []uuid.UUID) error {
	for _, id := range ids {
		if _, err := s.users.FindByID(ctx, q, id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.Invalid("organizer_ids", fmt.Sprintf("unknown user %s", id))
			}
			return fmt.Errorf("failed to check organizer: %w", err)
		}
	}
	return nil
}

// displayName prefers the given name, then the user's profile name
func (s *EventService) displayName(ctx context.Context, q ports.DBTX, userID uuid.UUID, fullName string) (string, error) {
	if name := strings.TrimSpace(fullName); name != "" {
		return name, nil
	}
	user, err := s.users.FindByID(ctx, q, userID)
	if err != nil {
		return "", fmt.Errorf("failed to get user: %w", err)
	}
	return user.FullName(), nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return nil
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
