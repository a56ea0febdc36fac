// internal/adapters/db/channel_repository.go
package db

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
)

const channelColumns = `id, name, creator_id, created_at, updated_at`

// channelRepository implements ports.ChannelRepository
type channelRepository struct {
	logger *slog.Logger
}

// NewChannelRepository creates a new channel repository
func NewChannelRepository(logger *slog.Logger) ports.ChannelRepository {
	return &channelRepository{
		logger: logger.With(slog.String("repository", "channels")),
	}
}

func scanChannel(row pgx.Row) (*domain.Channel, error) {
	var c domain.Channel
	if err := row.Scan(&c.ID, &c.Name, &c.CreatorID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *channelRepository) List(ctx context.Context, q ports.DBTX) ([]*domain.Channel, error) {
	rows, err := q.Query(ctx, `SELECT `+channelColumns+` FROM channels ORDER BY created_at, id`)
	if err != nil {
		return nil, mapError("list channels", err)
	}
	channels, err := scanAll(rows, scanChannel)
	if err != nil {
		return nil, mapError("scan channels", err)
	}
	return channels, nil
}

func (r *channelRepository) ListByCreator(ctx context.Context, q ports.DBTX, creatorID uuid.UUID) ([]*domain.Channel, error) {
	rows, err := q.Query(ctx,
		`SELECT `+channelColumns+` FROM channels WHERE creator_id = $1 ORDER BY created_at, id`,
		creatorID)
	if err != nil {
		return nil, mapError("list user channels", err)
	}
	channels, err := scanAll(rows, scanChannel)
	if err != nil {
		return nil, mapError("scan channels", err)
	}
	return channels, nil
}

func (r *channelRepository) FindByID(ctx context.Context, q ports.DBTX, id uuid.UUID) (*domain.Channel, error) {
	channel, err := scanChannel(q.QueryRow(ctx, `SELECT `+channelColumns+` FROM channels WHERE id = $1`, id))
	if err != nil {
		return nil, mapError("find channel", err)
	}
	return channel, nil
}

func (r *channelRepository) FindByName(ctx context.Context, q ports.DBTX, name string, creatorID uuid.UUID) (*domain.Channel, error) {
	channel, err := scanChannel(q.QueryRow(ctx,
		`SELECT `+channelColumns+` FROM channels WHERE name = $1 AND creator_id = $2`,
		name, creatorID))
	if err != nil {
		return nil, mapError("find channel by name", err)
	}
	return channel, nil
}

func (r *channelRepository) Create(ctx context.Context, q ports.DBTX, channel *domain.Channel) error {
	_, err := q.Exec(ctx,
		`INSERT INTO channels (`+channelColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		channel.ID, channel.Name, channel.CreatorID, channel.CreatedAt, channel.UpdatedAt)
	if err != nil {
		return mapError("create channel", err)
	}

	r.logger.DebugContext(ctx, "channel created",
		slog.String("channel_id", channel.ID.String()),
		slog.String("name", channel.Name))
	return nil
}

func (r *channelRepository) Update(ctx context.Context, q ports.DBTX, channel *domain.Channel) error {
	tag, err := q.Exec(ctx,
		`UPDATE channels SET name = $2, updated_at = $3 WHERE id = $1`,
		channel.ID, channel.Name, channel.UpdatedAt)
	if err != nil {
		return mapError("update channel", err)
	}
	return expectOne("update channel", tag)
}

func (r *channelRepository) Delete(ctx context.Context, q ports.DBTX, id uuid.UUID) error {
	tag, err := q.Exec(ctx, `DELETE FROM channels WHERE id = $1`, id)
	if err != nil {
		return mapError("delete channel", err)
	}
	return expectOne("delete channel", tag)
}

func (r *channelRepository) MeetingIDs(ctx context.Context, q ports.DBTX, channelID uuid.UUID) ([]string, error) {
	rows, err := q.Query(ctx,
		`SELECT meeting_id FROM events WHERE channel_id = $1 ORDER BY start_time`, channelID)
	if err != nil {
		return nil, mapError("list channel meetings", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, mapError("scan channel meetings", err)
	}
	return ids, nil
}
