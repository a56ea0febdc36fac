// internal/core/services/rtmp.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
)

// RtmpService handles stream endpoint logic
type RtmpService struct {
	endpoints ports.RtmpRepository
	logger    *slog.Logger
}

var _ ports.RtmpService = (*RtmpService)(nil)

// NewRtmpService creates a new stream endpoint service
func NewRtmpService(endpoints ports.RtmpRepository, logger *slog.Logger) *RtmpService {
	return &RtmpService{
		endpoints: endpoints,
		logger:    logger.With(slog.String("service", "rtmp")),
	}
}

// ListEndpoints returns every endpoint
func (s *RtmpService) ListEndpoints(ctx context.Context, q ports.DBTX) ([]*domain.RtmpEndpoint, error) {
	endpoints, err := s.endpoints.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list stream endpoints: %w", err)
	}
	return endpoints, nil
}

// ListEndpointsByUser returns the endpoints userID owns
func (s *RtmpService) ListEndpointsByUser(ctx context.Context, q ports.DBTX, userID uuid.UUID) ([]*domain.RtmpEndpoint, error) {
	endpoints, err := s.endpoints.ListByUser(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user stream endpoints: %w", err)
	}
	return endpoints, nil
}

// GetEndpointByID retrieves an endpoint by ID
func (s *RtmpService) GetEndpointByID(ctx context.Context, q ports.DBTX, id uuid.UUID) (*domain.RtmpEndpoint, error) {
	endpoint, err := s.endpoints.FindByID(ctx, q, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get stream endpoint: %w", err)
	}
	return endpoint, nil
}

// CreateEndpoint creates an endpoint owned by userID. Stream keys are unique.
func (s *RtmpService) CreateEndpoint(ctx context.Context, q ports.DBTX, input domain.RtmpEndpointInput, userID uuid.UUID) (*domain.RtmpEndpoint, error) {
	endpoint := &domain.RtmpEndpoint{
		Title:     input.Title,
		StreamKey: input.StreamKey,
		RtmpURL:   input.RtmpURL,
		UserID:    userID,
	}
	if err := endpoint.Validate(); err != nil {
		return nil, err
	}
	endpoint.PrepareForStorage()

	if err := s.endpoints.Create(ctx, q, endpoint); err != nil {
		return nil, fmt.Errorf("failed to create stream endpoint: %w", err)
	}

	s.logger.InfoContext(ctx, "created stream endpoint",
		slog.String("endpoint_id", endpoint.ID.String()),
		slog.String("user_id", userID.String()))
	return endpoint, nil
}

// UpdateEndpoint applies the set fields of update. Only the owner may edit.
func (s *RtmpService) UpdateEndpoint(ctx context.Context, q ports.DBTX, id uuid.UUID, update domain.RtmpEndpointUpdate, userID uuid.UUID) (*domain.RtmpEndpoint, error) {
	endpoint, err := s.owned(ctx, q, id, userID)
	if err != nil {
		return nil, err
	}

	update.Apply(endpoint)
	if err := endpoint.Validate(); err != nil {
		return nil, err
	}
	endpoint.UpdatedAt = time.Now().UTC()

	if err := s.endpoints.Update(ctx, q, endpoint); err != nil {
		return nil, fmt.Errorf("failed to update stream endpoint: %w", err)
	}
	return endpoint, nil
}

// DeleteEndpoint removes an endpoint. Only the owner may delete it.
func (s *RtmpService) DeleteEndpoint(ctx context.Context, q ports.DBTX, id, userID uuid.UUID) error {
	if _, err := s.owned(ctx, q, id, userID); err != nil {
		return err
	}
	if err := s.endpoints.Delete(ctx, q, id); err != nil {
		return fmt.Errorf("failed to delete stream endpoint: %w", err)
	}

	s.logger.InfoContext(ctx, "deleted stream endpoint", slog.String("endpoint_id", id.String()))
	return nil
}

func (s *RtmpService) owned(ctx context.Context, q ports.DBTX, id, userID uuid.UUID) (*domain.RtmpEndpoint, error) {
	endpoint, err := s.GetEndpointByID(ctx, q, id)
	if err != nil {
		return nil, err
	}
	if endpoint.UserID != userID {
		return nil, fmt.Errorf("stream endpoint %s: %w", id, domain.ErrForbidden)
	}
	return endpoint, nil
}
