// internal/adapters/db/event_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
)

var eventColumns = []string{
	"e.id", "e.title", "e.description", "e.occurs", "e.start_date", "e.end_date",
	"e.start_time", "e.timezone", "e.creator_id", "e.channel_id", "e.meeting_id",
	"e.moderator_pw", "e.attendee_pw", "e.meeting_created", "e.status",
	"e.actual_start_time", "e.actual_end_time", "e.created_at", "e.updated_at",
	"COALESCE((SELECT array_agg(o.user_id::text ORDER BY o.user_id) FROM event_organizers o WHERE o.event_id = e.id), '{}')",
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// eventRepository implements ports.EventRepository
type eventRepository struct {
	logger *slog.Logger
}

// NewEventRepository creates a new event repository
func NewEventRepository(logger *slog.Logger) ports.EventRepository {
	return &eventRepository{
		logger: logger.With(slog.String("repository", "events")),
	}
}

func scanEvent(row pgx.Row) (*domain.Event, error) {
	var (
		e          domain.Event
		organizers []string
	)
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Occurs, &e.StartDate, &e.EndDate,
		&e.StartTime, &e.Timezone, &e.CreatorID, &e.ChannelID, &e.MeetingID,
		&e.ModeratorPW, &e.AttendeePW, &e.MeetingCreated, &e.Status,
		&e.ActualStartTime, &e.ActualEndTime, &e.CreatedAt, &e.UpdatedAt,
		&organizers,
	)
	if err != nil {
		return nil, err
	}

	e.OrganizerIDs = make([]uuid.UUID, 0, len(organizers))
	for _, raw := range organizers {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid organizer id %q: %w", raw, err)
		}
		e.OrganizerIDs = append(e.OrganizerIDs, id)
	}
	return &e, nil
}

// List returns events matching the filter ordered by start time. A user
// filter matches events the user created or organizes.
func (r *eventRepository) List(ctx context.Context, q ports.DBTX, filter domain.EventFilter) ([]*domain.Event, error) {
	qb := psql.Select(eventColumns...).From("events e")

	if filter.Status != "" {
		qb = qb.Where(squirrel.Eq{"e.status": string(filter.Status)})
	}
	if filter.ChannelID != nil {
		qb = qb.Where(squirrel.Eq{"e.channel_id": *filter.ChannelID})
	}
	if filter.UserID != nil {
		qb = qb.Where(squirrel.Or{
			squirrel.Eq{"e.creator_id": *filter.UserID},
			squirrel.Expr("EXISTS (SELECT 1 FROM event_organizers o WHERE o.event_id = e.id AND o.user_id = ?)", *filter.UserID),
		})
	}

	if filter.Status == domain.EventEnded {
		qb = qb.OrderBy("e.start_time DESC", "e.id")
	} else {
		qb = qb.OrderBy("e.start_time ASC", "e.id")
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build event query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError("list events", err)
	}
	events, err := scanAll(rows, scanEvent)
	if err != nil {
		return nil, mapError("scan events", err)
	}
	return events, nil
}

func (r *eventRepository) findOne(ctx context.Context, q ports.DBTX, op string, where squirrel.Sqlizer) (*domain.Event, error) {
	query, args, err := psql.Select(eventColumns...).From("events e").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build event query: %w", err)
	}
	event, err := scanEvent(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapError(op, err)
	}
	return event, nil
}

func (r *eventRepository) FindByID(ctx context.Context, q ports.DBTX, id uuid.UUID) (*domain.Event, error) {
	return r.findOne(ctx, q, "find event", squirrel.Eq{"e.id": id})
}

func (r *eventRepository) FindByMeetingID(ctx context.Context, q ports.DBTX, meetingID string) (*domain.Event, error) {
	return r.findOne(ctx, q, "find event by meeting id", squirrel.Eq{"e.meeting_id": meetingID})
}

// Create inserts the event and its organizers. Callers run it inside a
// transaction so a rejected organizer rolls back the event.
func (r *eventRepository) Create(ctx context.Context, q ports.DBTX, event *domain.Event) error {
	_, err := q.Exec(ctx, `
		INSERT INTO events (
			id, title, description, occurs, start_date, end_date, start_time, timezone,
			creator_id, channel_id, meeting_id, moderator_pw, attendee_pw, meeting_created,
			status, actual_start_time, actual_end_time, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19
		)`,
		event.ID, event.Title, event.Description, string(event.Occurs), event.StartDate, event.EndDate,
		event.StartTime, event.Timezone, event.CreatorID, event.ChannelID, event.MeetingID,
		event.ModeratorPW, event.AttendeePW, event.MeetingCreated, string(event.Status),
		event.ActualStartTime, event.ActualEndTime, event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		return mapError("create event", err)
	}

	if err := r.insertOrganizers(ctx, q, event); err != nil {
		return err
	}

	r.logger.DebugContext(ctx, "event created",
		slog.String("event_id", event.ID.String()),
		slog.String("meeting_id", event.MeetingID))
	return nil
}

func (r *eventRepository) Update(ctx context.Context, q ports.DBTX, event *domain.Event) error {
	tag, err := q.Exec(ctx, `
		UPDATE events SET
			title = $2, description = $3, occurs = $4, start_date = $5, end_date = $6,
			start_time = $7, timezone = $8, channel_id = $9, meeting_created = $10,
			status = $11, actual_start_time = $12, actual_end_time = $13, updated_at = $14
		WHERE id = $1`,
		event.ID, event.Title, event.Description, string(event.Occurs), event.StartDate, event.EndDate,
		event.StartTime, event.Timezone, event.ChannelID, event.MeetingCreated,
		string(event.Status), event.ActualStartTime, event.ActualEndTime, event.UpdatedAt,
	)
	if err != nil {
		return mapError("update event", err)
	}
	if err := expectOne("update event", tag); err != nil {
		return err
	}

	if _, err := q.Exec(ctx, `DELETE FROM event_organizers WHERE event_id = $1`, event.ID); err != nil {
		return mapError("reset event organizers", err)
	}
	return r.insertOrganizers(ctx, q, event)
}

func (r *eventRepository) Delete(ctx context.Context, q ports.DBTX, id uuid.UUID) error {
	tag, err := q.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return mapError("delete event", err)
	}
	return expectOne("delete event", tag)
}

func (r *eventRepository) insertOrganizers(ctx context.Context, q ports.DBTX, event *domain.Event) error {
	if len(event.OrganizerIDs) == 0 {
		return nil
	}

	qb := psql.Insert("event_organizers").Columns("event_id", "user_id")
	for _, userID := range event.OrganizerIDs {
		qb = qb.Values(event.ID, userID)
	}
	query, args, err := qb.Suffix("ON CONFLICT DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("failed to build organizer insert: %w", err)
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return mapError("add event organizers", err)
	}
	return nil
}
