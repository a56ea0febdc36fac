// internal/core/services/cached_event.go
package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/ammerola/spoutbreeze-be/internal/core/cache"
	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
)

// CachedEventService serves event reads through the cache. Every state
// change drops all event lists and the changed event's entry.
type CachedEventService struct {
	inner ports.EventService
	rt    *cache.ReadThrough
	inv   *cache.Invalidator
	ttl   cache.TTLs
}

var _ ports.EventService = (*CachedEventService)(nil)

// NewCachedEventService wraps inner with read-through caching
func NewCachedEventService(inner ports.EventService, rt *cache.ReadThrough, inv *cache.Invalidator, ttl cache.TTLs) *CachedEventService {
	return &CachedEventService{inner: inner, rt: rt, inv: inv, ttl: ttl.WithDefaults()}
}

func (s *CachedEventService) ListEvents(ctx context.Context, q ports.DBTX) ([]*domain.Event, error) {
	o := cache.Options{Prefix: cache.PrefixEventsAll, Name: "list_events", TTL: s.ttl.Long}
	return cache.CachedDB(ctx, s.rt, o, func() ([]*domain.Event, error) {
		return s.inner.ListEvents(ctx, q)
	}, q)
}

func (s *CachedEventService) ListEventsByStatus(ctx context.Context, q ports.DBTX, status domain.EventStatus, userID *uuid.UUID) ([]*domain.Event, error) {
	o := cache.Options{Prefix: cache.PrefixEventsStatus, Name: "list_events_by_status", TTL: s.ttl.Long}
	return cache.CachedDB(ctx, s.rt, o, func() ([]*domain.Event, error) {
		return s.inner.ListEventsByStatus(ctx, q, status, userID)
	}, q, status, cache.Named("user_id", userID))
}

func (s *CachedEventService) ListUpcoming(ctx context.Context, q ports.DBTX, userID *uuid.UUID) ([]*domain.Event, error) {
	o := cache.Options{Prefix: cache.PrefixEventsUpcoming, Name: "list_upcoming", TTL: s.ttl.Long}
	return cache.CachedDB(ctx, s.rt, o, func() ([]*domain.Event, error) {
		return s.inner.ListUpcoming(ctx, q, userID)
	}, q, cache.Named("user_id", userID))
}

func (s *CachedEventService) ListPast(ctx context.Context, q ports.DBTX, userID *uuid.UUID) ([]*domain.Event, error) {
	o := cache.Options{Prefix: cache.PrefixEventsPast, Name: "list_past", TTL: s.ttl.Long}
	return cache.CachedDB(ctx, s.rt, o, func() ([]*domain.Event, error) {
		return s.inner.ListPast(ctx, q, userID)
	}, q, cache.Named("user_id", userID))
}

func (s *CachedEventService) ListLive(ctx context.Context, q ports.DBTX, userID *uuid.UUID) ([]*domain.Event, error) {
	o := cache.Options{Prefix: cache.PrefixEventsLive, Name: "list_live", TTL: s.ttl.Long}
	return cache.CachedDB(ctx, s.rt, o, func() ([]*domain.Event, error) {
		return s.inner.ListLive(ctx, q, userID)
	}, q, cache.Named("user_id", userID))
}

func (s *CachedEventService) GetEventByID(ctx context.Context, q ports.DBTX, id uuid.UUID) (*domain.Event, error) {
	o := cache.Options{Prefix: cache.PrefixEventsByID, Name: "get_event_by_id", TTL: s.ttl.Long, Tag: id.String()}
	return cache.CachedDB(ctx, s.rt, o, func() (*domain.Event, error) {
		return s.inner.GetEventByID(ctx, q, id)
	}, q, id)
}

func (s *CachedEventService) ListEventsByChannel(ctx context.Context, q ports.DBTX, channelID uuid.UUID) ([]*domain.Event, error) {
	o := cache.Options{Prefix: cache.PrefixEventsChannel, Name: "list_events_by_channel", TTL: s.ttl.Long, Tag: channelID.String()}
	return cache.CachedDB(ctx, s.rt, o, func() ([]*domain.Event, error) {
		return s.inner.ListEventsByChannel(ctx, q, channelID)
	}, q, channelID)
}

func (s *CachedEventService) JoinEvent(ctx context.Context, q ports.DBTX, id, userID uuid.UUID, fullName string) (*domain.JoinLinks, error) {
	o := cache.Options{Prefix: cache.PrefixEventsJoin, Name: "join_event", TTL: s.ttl.Short, Tag: id.String()}
	return cache.CachedDB(ctx, s.rt, o, func() (*domain.JoinLinks, error) {
		return s.inner.JoinEvent(ctx, q, id, userID, fullName)
	}, q, id, userID, fullName)
}

// CreateEvent also drops channel reads because the channel may have been
// created on the way
func (s *CachedEventService) CreateEvent(ctx context.Context, q ports.DBTX, input domain.EventCreate, userID uuid.UUID) (*domain.Event, error) {
	event, err := s.inner.CreateEvent(ctx, q, input, userID)
	if err != nil {
		return nil, err
	}
	s.inv.Invalidate(ctx, append(cache.EventPatterns(&event.ID), cache.ChannelPatterns()...)...)
	return event, nil
}

func (s *CachedEventService) StartEvent(ctx context.Context, q ports.DBTX, id, userID uuid.UUID) (*domain.JoinLinks, error) {
	links, err := s.inner.StartEvent(ctx, q, id, userID)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return links, nil
}

func (s *CachedEventService) EndEvent(ctx context.Context, q ports.DBTX, id, userID uuid.UUID) (*domain.Event, error) {
	event, err := s.inner.EndEvent(ctx, q, id, userID)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, event.ID)
	return event, nil
}

func (s *CachedEventService) EndEventByMeetingID(ctx context.Context, q ports.DBTX, meetingID string) (*domain.Event, error) {
	event, err := s.inner.EndEventByMeetingID(ctx, q, meetingID)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, event.ID)
	return event, nil
}

func (s *CachedEventService) CancelEvent(ctx context.Context, q ports.DBTX, id, userID uuid.UUID) (*domain.Event, error) {
	event, err := s.inner.CancelEvent(ctx, q, id, userID)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, event.ID)
	return event, nil
}

func (s *CachedEventService) UpdateEvent(ctx context.Context, q ports.DBTX, id uuid.UUID, update domain.EventUpdate, userID uuid.UUID) (*domain.Event, error) {
	event, err := s.inner.UpdateEvent(ctx, q, id, update, userID)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, event.ID)
	return event, nil
}

// DeleteEvent also drops channel recordings, which list the event's meeting
func (s *CachedEventService) DeleteEvent(ctx context.Context, q ports.DBTX, id, userID uuid.UUID) error {
	if err := s.inner.DeleteEvent(ctx, q, id, userID); err != nil {
		return err
	}
	s.inv.Invalidate(ctx, append(cache.EventPatterns(&id), cache.All(cache.PrefixChannelsRecordings))...)
	return nil
}

func (s *CachedEventService) invalidate(ctx context.Context, id uuid.UUID) {
	s.inv.Invalidate(ctx, cache.EventPatterns(&id)...)
}
