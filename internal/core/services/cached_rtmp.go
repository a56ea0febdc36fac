// internal/core/services/cached_rtmp.go
package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/ammerola/spoutbreeze-be/internal/core/cache"
	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
)

// CachedRtmpService serves stream endpoint reads through the cache
type CachedRtmpService struct {
	inner ports.RtmpService
	rt    *cache.ReadThrough
	inv   *cache.Invalidator
	ttl   cache.TTLs
}

var _ ports.RtmpService = (*CachedRtmpService)(nil)

// NewCachedRtmpService wraps inner with read-through caching
func NewCachedRtmpService(inner ports.RtmpService, rt *cache.ReadThrough, inv *cache.Invalidator, ttl cache.TTLs) *CachedRtmpService {
	return &CachedRtmpService{inner: inner, rt: rt, inv: inv, ttl: ttl.WithDefaults()}
}

func (s *CachedRtmpService) ListEndpoints(ctx context.Context, q ports.DBTX) ([]*domain.RtmpEndpoint, error) {
	o := cache.Options{Prefix: cache.PrefixRtmpAll, Name: "list_endpoints", TTL: s.ttl.Long}
	return cache.CachedDB(ctx, s.rt, o, func() ([]*domain.RtmpEndpoint, error) {
		return s.inner.ListEndpoints(ctx, q)
	}, q)
}

func (s *CachedRtmpService) ListEndpointsByUser(ctx context.Context, q ports.DBTX, userID uuid.UUID) ([]*domain.RtmpEndpoint, error) {
	o := cache.Options{Prefix: cache.PrefixRtmpUser, Name: "list_endpoints_by_user", TTL: s.ttl.Long, Tag: userID.String()}
	return cache.CachedDB(ctx, s.rt, o, func() ([]*domain.RtmpEndpoint, error) {
		return s.inner.ListEndpointsByUser(ctx, q, userID)
	}, q, userID)
}

func (s *CachedRtmpService) GetEndpointByID(ctx context.Context, q ports.DBTX, id uuid.UUID) (*domain.RtmpEndpoint, error) {
	o := cache.Options{Prefix: cache.PrefixRtmpByID, Name: "get_endpoint_by_id", TTL: s.ttl.Long, Tag: id.String()}
	return cache.CachedDB(ctx, s.rt, o, func() (*domain.RtmpEndpoint, error) {
		return s.inner.GetEndpointByID(ctx, q, id)
	}, q, id)
}

func (s *CachedRtmpService) CreateEndpoint(ctx context.Context, q ports.DBTX, input domain.RtmpEndpointInput, userID uuid.UUID) (*domain.RtmpEndpoint, error) {
	endpoint, err := s.inner.CreateEndpoint(ctx, q, input, userID)
	if err != nil {
		return nil, err
	}
	s.inv.Invalidate(ctx, cache.RtmpPatterns()...)
	return endpoint, nil
}

func (s *CachedRtmpService) UpdateEndpoint(ctx context.Context, q ports.DBTX, id uuid.UUID, update domain.RtmpEndpointUpdate, userID uuid.UUID) (*domain.RtmpEndpoint, error) {
	endpoint, err := s.inner.UpdateEndpoint(ctx, q, id, update, userID)
	if err != nil {
		return nil, err
	}
	s.inv.Invalidate(ctx, cache.RtmpPatterns()...)
	return endpoint, nil
}

func (s *CachedRtmpService) DeleteEndpoint(ctx context.Context, q ports.DBTX, id, userID uuid.UUID) error {
	if err := s.inner.DeleteEndpoint(ctx, q, id, userID); err != nil {
		return err
	}
	s.inv.Invalidate(ctx, cache.RtmpPatterns()...)
	return nil
}
