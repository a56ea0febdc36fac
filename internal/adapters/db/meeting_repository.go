// internal/adapters/db/meeting_repository.go
package db

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
)

const meetingColumns = `id, meeting_id, internal_meeting_id, parent_meeting_id, attendee_pw, moderator_pw,
	create_time, voice_bridge, dial_number, has_user_joined, duration, forcibly_ended,
	user_id, event_id, ended, created_at, updated_at`

// meetingRepository implements ports.MeetingRepository over bbb_meetings
type meetingRepository struct {
	logger *slog.Logger
}

// NewMeetingRepository creates a new BBB meeting repository
func NewMeetingRepository(logger *slog.Logger) ports.MeetingRepository {
	return &meetingRepository{
		logger: logger.With(slog.String("repository", "bbb_meetings")),
	}
}

func scanMeeting(row pgx.Row) (*domain.BbbMeeting, error) {
	var m domain.BbbMeeting
	err := row.Scan(
		&m.ID, &m.MeetingID, &m.InternalMeetingID, &m.ParentMeetingID, &m.AttendeePW, &m.ModeratorPW,
		&m.CreateTime, &m.VoiceBridge, &m.DialNumber, &m.HasUserJoined, &m.Duration, &m.HasBeenForciblyEnded,
		&m.UserID, &m.EventID, &m.IsEnded, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *meetingRepository) Create(ctx context.Context, q ports.DBTX, m *domain.BbbMeeting) error {
	_, err := q.Exec(ctx, `
		INSERT INTO bbb_meetings (`+meetingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		m.ID, m.MeetingID, m.InternalMeetingID, m.ParentMeetingID, m.AttendeePW, m.ModeratorPW,
		m.CreateTime, m.VoiceBridge, m.DialNumber, m.HasUserJoined, m.Duration, m.HasBeenForciblyEnded,
		m.UserID, m.EventID, m.IsEnded, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return mapError("create meeting", err)
	}

	r.logger.DebugContext(ctx, "meeting recorded", slog.String("meeting_id", m.MeetingID))
	return nil
}

func (r *meetingRepository) FindByMeetingID(ctx context.Context, q ports.DBTX, meetingID string) (*domain.BbbMeeting, error) {
	m, err := scanMeeting(q.QueryRow(ctx, `SELECT `+meetingColumns+` FROM bbb_meetings WHERE meeting_id = $1`, meetingID))
	if err != nil {
		return nil, mapError("find meeting", err)
	}
	return m, nil
}

func (r *meetingRepository) Update(ctx context.Context, q ports.DBTX, m *domain.BbbMeeting) error {
	tag, err := q.Exec(ctx, `
		UPDATE bbb_meetings SET
			internal_meeting_id = $2, has_user_joined = $3, duration = $4,
			forcibly_ended = $5, ended = $6, updated_at = $7
		WHERE meeting_id = $1`,
		m.MeetingID, m.InternalMeetingID, m.HasUserJoined, m.Duration,
		m.HasBeenForciblyEnded, m.IsEnded, m.UpdatedAt,
	)
	if err != nil {
		return mapError("update meeting", err)
	}
	return expectOne("update meeting", tag)
}
