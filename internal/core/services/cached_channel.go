// internal/core/services/cached_channel.go
package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/ammerola/spoutbreeze-be/internal/core/cache"
	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
)

// CachedChannelService serves channel reads through the cache
type CachedChannelService struct {
	inner ports.ChannelService
	rt    *cache.ReadThrough
	inv   *cache.Invalidator
	ttl   cache.TTLs
}

var _ ports.ChannelService = (*CachedChannelService)(nil)

// NewCachedChannelService wraps inner with read-through caching
func NewCachedChannelService(inner ports.ChannelService, rt *cache.ReadThrough, inv *cache.Invalidator, ttl cache.TTLs) *CachedChannelService {
	return &CachedChannelService{inner: inner, rt: rt, inv: inv, ttl: ttl.WithDefaults()}
}

func (s *CachedChannelService) ListChannels(ctx context.Context, q ports.DBTX) ([]*domain.Channel, error) {
	o := cache.Options{Prefix: cache.PrefixChannelsAll, Name: "list_channels", TTL: s.ttl.Medium}
	return cache.CachedDB(ctx, s.rt, o, func() ([]*domain.Channel, error) {
		return s.inner.ListChannels(ctx, q)
	}, q)
}

func (s *CachedChannelService) ListChannelsByUser(ctx context.Context, q ports.DBTX, userID uuid.UUID) ([]*domain.Channel, error) {
	o := cache.Options{Prefix: cache.PrefixChannelsUser, Name: "list_channels_by_user", TTL: s.ttl.Medium, Tag: userID.String()}
	return cache.CachedDB(ctx, s.rt, o, func() ([]*domain.Channel, error) {
		return s.inner.ListChannelsByUser(ctx, q, userID)
	}, q, userID)
}

func (s *CachedChannelService) GetChannelByID(ctx context.Context, q ports.DBTX, id uuid.UUID) (*domain.Channel, error) {
	o := cache.Options{Prefix: cache.PrefixChannelsByID, Name: "get_channel_by_id", TTL: s.ttl.Medium, Tag: id.String()}
	return cache.CachedDB(ctx, s.rt, o, func() (*domain.Channel, error) {
		return s.inner.GetChannelByID(ctx, q, id)
	}, q, id)
}

func (s *CachedChannelService) GetChannelByName(ctx context.Context, q ports.DBTX, name string, userID uuid.UUID) (*domain.Channel, error) {
	o := cache.Options{Prefix: cache.PrefixChannelsByName, Name: "get_channel_by_name", TTL: s.ttl.Medium, Tag: userID.String()}
	return cache.CachedDB(ctx, s.rt, o, func() (*domain.Channel, error) {
		return s.inner.GetChannelByName(ctx, q, name, userID)
	}, q, name, userID)
}

func (s *CachedChannelService) GetChannelRecordings(ctx context.Context, q ports.DBTX, channelID, userID uuid.UUID) (*domain.ChannelRecordings, error) {
	o := cache.Options{Prefix: cache.PrefixChannelsRecordings, Name: "get_channel_recordings", TTL: s.ttl.Short, Tag: channelID.String()}
	return cache.CachedDB(ctx, s.rt, o, func() (*domain.ChannelRecordings, error) {
		return s.inner.GetChannelRecordings(ctx, q, channelID, userID)
	}, q, channelID, userID)
}

func (s *CachedChannelService) CreateChannel(ctx context.Context, q ports.DBTX, input domain.ChannelInput, userID uuid.UUID) (*domain.Channel, error) {
	channel, err := s.inner.CreateChannel(ctx, q, input, userID)
	if err != nil {
		return nil, err
	}
	s.inv.Invalidate(ctx, cache.ChannelPatterns()...)
	return channel, nil
}

func (s *CachedChannelService) UpdateChannel(ctx context.Context, q ports.DBTX, id uuid.UUID, input domain.ChannelInput, userID uuid.UUID) (*domain.Channel, error) {
	channel, err := s.inner.UpdateChannel(ctx, q, id, input, userID)
	if err != nil {
		return nil, err
	}
	s.inv.Invalidate(ctx, cache.ChannelPatterns()...)
	return channel, nil
}

// DeleteChannel also drops event reads since the channel's events go with it
func (s *CachedChannelService) DeleteChannel(ctx context.Context, q ports.DBTX, id, userID uuid.UUID) error {
	if err := s.inner.DeleteChannel(ctx, q, id, userID); err != nil {
		return err
	}
	patterns := append(cache.ChannelPatterns(), cache.EventPatterns(nil)...)
	patterns = append(patterns, cache.All(cache.PrefixEventsByID))
	s.inv.Invalidate(ctx, patterns...)
	return nil
}

func (s *CachedChannelService) GetOrCreateChannel(ctx context.Context, q ports.DBTX, name string, userID uuid.UUID) (*domain.Channel, bool, error) {
	channel, created, err := s.inner.GetOrCreateChannel(ctx, q, name, userID)
	if err != nil {
		return nil, false, err
	}
	if created {
		s.inv.Invalidate(ctx, cache.ChannelPatterns()...)
	}
	return channel, created, nil
}
