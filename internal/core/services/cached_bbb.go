// internal/core/services/cached_bbb.go
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/ammerola/spoutbreeze-be/internal/core/cache"
	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
)

// CachedBBBService serves BigBlueButton reads through the cache. Meeting
// state uses the shortest tiers since it changes outside this process.
type CachedBBBService struct {
	inner ports.BBBService
	rt    *cache.ReadThrough
	inv   *cache.Invalidator
	ttl   cache.TTLs
}

var _ ports.BBBService = (*CachedBBBService)(nil)

// NewCachedBBBService wraps inner with read-through caching
func NewCachedBBBService(inner ports.BBBService, rt *cache.ReadThrough, inv *cache.Invalidator, ttl cache.TTLs) *CachedBBBService {
	return &CachedBBBService{inner: inner, rt: rt, inv: inv, ttl: ttl.WithDefaults()}
}

func (s *CachedBBBService) IsMeetingRunning(ctx context.Context, meetingID string) (*domain.MeetingStatus, error) {
	o := cache.Options{Prefix: cache.PrefixBBBIsRunning, Name: "is_meeting_running", TTL: s.ttl.BBBRunning, Tag: meetingID}
	return cache.Cached(ctx, s.rt, o, func() (*domain.MeetingStatus, error) {
		return s.inner.IsMeetingRunning(ctx, meetingID)
	}, meetingID)
}

func (s *CachedBBBService) GetMeetingInfo(ctx context.Context, meetingID, password string) (*domain.MeetingInfo, error) {
	o := cache.Options{Prefix: cache.PrefixBBBMeetingInfo, Name: "get_meeting_info", TTL: s.ttl.BBB, Tag: meetingID}
	return cache.Cached(ctx, s.rt, o, func() (*domain.MeetingInfo, error) {
		return s.inner.GetMeetingInfo(ctx, meetingID, password)
	}, meetingID, password)
}

func (s *CachedBBBService) GetMeetings(ctx context.Context) ([]domain.MeetingInfo, error) {
	o := cache.Options{Prefix: cache.PrefixBBBMeetings, Name: "get_meetings", TTL: s.ttl.BBB}
	return cache.Cached(ctx, s.rt, o, func() ([]domain.MeetingInfo, error) {
		return s.inner.GetMeetings(ctx)
	})
}

// GetRecordings tags the key with the requested ids so a meeting's sweep
// also finds multi-meeting entries
func (s *CachedBBBService) GetRecordings(ctx context.Context, meetingIDs []string) ([]domain.Recording, error) {
	o := cache.Options{Prefix: cache.PrefixBBBRecordings, Name: "get_recordings", TTL: s.ttl.Medium, Tag: strings.Join(meetingIDs, ",")}
	return cache.Cached(ctx, s.rt, o, func() ([]domain.Recording, error) {
		return s.inner.GetRecordings(ctx, meetingIDs)
	}, meetingIDs)
}

func (s *CachedBBBService) JoinURL(meetingID, fullName, password, userID string) string {
	return s.inner.JoinURL(meetingID, fullName, password, userID)
}

func (s *CachedBBBService) CreateMeeting(ctx context.Context, q ports.DBTX, req domain.CreateMeetingRequest, userID uuid.UUID, eventID *uuid.UUID) (*domain.BbbMeeting, error) {
	meeting, err := s.inner.CreateMeeting(ctx, q, req, userID, eventID)
	if err != nil {
		return nil, err
	}
	s.inv.Invalidate(ctx, cache.BBBPatterns(meeting.MeetingID)...)
	return meeting, nil
}

func (s *CachedBBBService) EndMeeting(ctx context.Context, q ports.DBTX, meetingID, password string) error {
	if err := s.inner.EndMeeting(ctx, q, meetingID, password); err != nil {
		return err
	}
	s.inv.Invalidate(ctx, cache.BBBPatterns(meetingID)...)
	return nil
}

func (s *CachedBBBService) UpdateMeetingStatus(ctx context.Context, q ports.DBTX, meetingID string, ended bool) (*domain.BbbMeeting, error) {
	meeting, err := s.inner.UpdateMeetingStatus(ctx, q, meetingID, ended)
	if err != nil {
		return nil, err
	}
	s.inv.Invalidate(ctx, cache.BBBPatterns(meetingID)...)
	return meeting, nil
}

// MeetingEndedCallback drops the meeting's entries once the meeting is
// recorded as ended, even when its event could not be ended. The event sweep
// runs in the event write path the inner service calls.
func (s *CachedBBBService) MeetingEndedCallback(ctx context.Context, q ports.DBTX, meetingID string, eventID *uuid.UUID) (*domain.Event, error) {
	event, err := s.inner.MeetingEndedCallback(ctx, q, meetingID, eventID)
	if err != nil && !errors.Is(err, errEventNotEnded) {
		return nil, err
	}
	s.inv.Invalidate(ctx, cache.BBBPatterns(meetingID)...)
	return event, err
}
