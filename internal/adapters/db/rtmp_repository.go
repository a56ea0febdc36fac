// internal/adapters/db/rtmp_repository.go
package db

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
)

const rtmpColumns = `id, title, stream_key, rtmp_url, user_id, created_at, updated_at`

// rtmpRepository implements ports.RtmpRepository over stream_endpoints
type rtmpRepository struct {
	logger *slog.Logger
}

// NewRtmpRepository creates a new stream endpoint repository
func NewRtmpRepository(logger *slog.Logger) ports.RtmpRepository {
	return &rtmpRepository{
		logger: logger.With(slog.String("repository", "stream_endpoints")),
	}
}

func scanEndpoint(row pgx.Row) (*domain.RtmpEndpoint, error) {
	var e domain.RtmpEndpoint
	if err := row.Scan(&e.ID, &e.Title, &e.StreamKey, &e.RtmpURL, &e.UserID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *rtmpRepository) List(ctx context.Context, q ports.DBTX) ([]*domain.RtmpEndpoint, error) {
	rows, err := q.Query(ctx, `SELECT `+rtmpColumns+` FROM stream_endpoints ORDER BY created_at, id`)
	if err != nil {
		return nil, mapError("list stream endpoints", err)
	}
	endpoints, err := scanAll(rows, scanEndpoint)
	if err != nil {
		return nil, mapError("scan stream endpoints", err)
	}
	return endpoints, nil
}

func (r *rtmpRepository) ListByUser(ctx context.Context, q ports.DBTX, userID uuid.UUID) ([]*domain.RtmpEndpoint, error) {
	rows, err := q.Query(ctx,
		`SELECT `+rtmpColumns+` FROM stream_endpoints WHERE user_id = $1 ORDER BY created_at, id`,
		userID)
	if err != nil {
		return nil, mapError("list user stream endpoints", err)
	}
	endpoints, err := scanAll(rows, scanEndpoint)
	if err != nil {
		return nil, mapError("scan stream endpoints", err)
	}
	return endpoints, nil
}

func (r *rtmpRepository) FindByID(ctx context.Context, q ports.DBTX, id uuid.UUID) (*domain.RtmpEndpoint, error) {
	endpoint, err := scanEndpoint(q.QueryRow(ctx, `SELECT `+rtmpColumns+` FROM stream_endpoints WHERE id = $1`, id))
	if err != nil {
		return nil, mapError("find stream endpoint", err)
	}
	return endpoint, nil
}

func (r *rtmpRepository) Create(ctx context.Context, q ports.DBTX, endpoint *domain.RtmpEndpoint) error {
	_, err := q.Exec(ctx,
		`INSERT INTO stream_endpoints (`+rtmpColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		endpoint.ID, endpoint.Title, endpoint.StreamKey, endpoint.RtmpURL, endpoint.UserID,
		endpoint.CreatedAt, endpoint.UpdatedAt)
	if err != nil {
		return mapError("create stream endpoint", err)
	}

	r.logger.DebugContext(ctx, "stream endpoint created", slog.String("endpoint_id", endpoint.ID.String()))
	return nil
}

func (r *rtmpRepository) Update(ctx context.Context, q ports.DBTX, endpoint *domain.RtmpEndpoint) error {
	tag, err := q.Exec(ctx, `
		UPDATE stream_endpoints SET title = $2, stream_key = $3, rtmp_url = $4, updated_at = $5
		WHERE id = $1`,
		endpoint.ID, endpoint.Title, endpoint.StreamKey, endpoint.RtmpURL, endpoint.UpdatedAt)
	if err != nil {
		return mapError("update stream endpoint", err)
	}
	return expectOne("update stream endpoint", tag)
}

func (r *rtmpRepository) Delete(ctx context.Context, q ports.DBTX, id uuid.UUID) error {
	tag, err := q.Exec(ctx, `DELETE FROM stream_endpoints WHERE id = $1`, id)
	if err != nil {
		return mapError("delete stream endpoint", err)
	}
	return expectOne("delete stream endpoint", tag)
}
