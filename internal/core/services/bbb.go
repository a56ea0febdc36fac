// internal/core/services/bbb.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
)

// errEventNotEnded marks a callback that recorded the meeting as ended but
// could not end its event
var errEventNotEnded = errors.New("failed to end event for meeting")

// BBBService wraps the BigBlueButton client and keeps the local meeting
// records in step with the server.
type BBBService struct {
	client   ports.BBBClient
	meetings ports.MeetingRepository
	ender    ports.EventEnder
	logger   *slog.Logger
}

var _ ports.BBBService = (*BBBService)(nil)

// NewBBBService creates a new BBB service
func NewBBBService(client ports.BBBClient, meetings ports.MeetingRepository, logger *slog.Logger) *BBBService {
	return &BBBService{
		client:   client,
		meetings: meetings,
		logger:   logger.With(slog.String("service", "bbb")),
	}
}

// SetEventEnder wires the event write path used by the meeting-ended
// callback. The event service depends on this service, so it is set after
// both are built.
func (s *BBBService) SetEventEnder(ender ports.EventEnder) {
	s.ender = ender
}

// CreateMeeting creates the meeting on the server and records it locally
func (s *BBBService) CreateMeeting(ctx context.Context, q ports.DBTX, req domain.CreateMeetingRequest, userID uuid.UUID, eventID *uuid.UUID) (*domain.BbbMeeting, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	res, err := s.client.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create bbb meeting: %w", err)
	}

	meeting := &domain.BbbMeeting{
		MeetingID:            res.MeetingID,
		InternalMeetingID:    res.InternalMeetingID,
		ParentMeetingID:      res.ParentMeetingID,
		AttendeePW:           res.AttendeePW,
		ModeratorPW:          res.ModeratorPW,
		CreateTime:           res.CreateTime,
		VoiceBridge:          res.VoiceBridge,
		DialNumber:           res.DialNumber,
		HasUserJoined:        res.HasUserJoined,
		Duration:             res.Duration,
		HasBeenForciblyEnded: res.HasBeenForciblyEnded,
		MessageKey:           res.MessageKey,
		Message:              res.Message,
		UserID:               userID,
		EventID:              eventID,
	}
	if meeting.MeetingID == "" {
		meeting.MeetingID = req.MeetingID
	}

	existing, err := s.meetings.FindByMeetingID(ctx, q, meeting.MeetingID)
	switch {
	case err == nil:
		// The server reuses a meeting id until it ends; refresh our record.
		meeting.ID = existing.ID
		meeting.CreatedAt = existing.CreatedAt
		meeting.PrepareForStorage()
		err = s.meetings.Update(ctx, q, meeting)
	case errors.Is(err, domain.ErrNotFound):
		meeting.PrepareForStorage()
		err = s.meetings.Create(ctx, q, meeting)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to record bbb meeting: %w", err)
	}

	s.logger.InfoContext(ctx, "created bbb meeting",
		slog.String("meeting_id", meeting.MeetingID),
		slog.String("internal_meeting_id", meeting.InternalMeetingID))
	return meeting, nil
}

// EndMeeting ends the meeting on the server and marks the record ended
func (s *BBBService) EndMeeting(ctx context.Context, q ports.DBTX, meetingID, password string) error {
	if err := s.client.End(ctx, meetingID, password); err != nil {
		return fmt.Errorf("failed to end bbb meeting: %w", err)
	}
	if _, err := s.UpdateMeetingStatus(ctx, q, meetingID, true); err != nil {
		return err
	}
	return nil
}

// IsMeetingRunning asks the server whether the meeting is in progress
func (s *BBBService) IsMeetingRunning(ctx context.Context, meetingID string) (*domain.MeetingStatus, error) {
	running, err := s.client.IsMeetingRunning(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to check bbb meeting: %w", err)
	}
	return &domain.MeetingStatus{MeetingID: meetingID, Running: running}, nil
}

// GetMeetingInfo returns the live state of a meeting
func (s *BBBService) GetMeetingInfo(ctx context.Context, meetingID, password string) (*domain.MeetingInfo, error) {
	info, err := s.client.GetMeetingInfo(ctx, meetingID, password)
	if err != nil {
		return nil, fmt.Errorf("failed to get bbb meeting info: %w", err)
	}
	return info, nil
}

// GetMeetings lists the meetings on the server
func (s *BBBService) GetMeetings(ctx context.Context) ([]domain.MeetingInfo, error) {
	meetings, err := s.client.GetMeetings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bbb meetings: %w", err)
	}
	return meetings, nil
}

// GetRecordings lists the recordings of the given meetings
func (s *BBBService) GetRecordings(ctx context.Context, meetingIDs []string) ([]domain.Recording, error) {
	recordings, err := s.client.GetRecordings(ctx, meetingIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list bbb recordings: %w", err)
	}
	return recordings, nil
}

// JoinURL builds a signed join link
func (s *BBBService) JoinURL(meetingID, fullName, password, userID string) string {
	return s.client.JoinURL(meetingID, fullName, password, userID)
}

// UpdateMeetingStatus records whether a meeting has ended. Meetings created
// outside this service have no record and yield nil.
func (s *BBBService) UpdateMeetingStatus(ctx context.Context, q ports.DBTX, meetingID string, ended bool) (*domain.BbbMeeting, error) {
	meeting, err := s.meetings.FindByMeetingID(ctx, q, meetingID)
	if errors.Is(err, domain.ErrNotFound) {
		s.logger.DebugContext(ctx, "no local record for meeting", slog.String("meeting_id", meetingID))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bbb meeting: %w", err)
	}

	meeting.IsEnded = ended
	meeting.UpdatedAt = time.Now().UTC()
	if err := s.meetings.Update(ctx, q, meeting); err != nil {
		return nil, fmt.Errorf("failed to update bbb meeting: %w", err)
	}
	return meeting, nil
}

// MeetingEndedCallback handles the server's meeting-ended notification. It
// marks the meeting ended and ends the event that owns it. A meeting no
// event owns yields a nil event.
func (s *BBBService) MeetingEndedCallback(ctx context.Context, q ports.DBTX, meetingID string, eventID *uuid.UUID) (*domain.Event, error) {
	if meetingID == "" {
		return nil, domain.Invalid("meeting_id", "is required")
	}

	if _, err := s.UpdateMeetingStatus(ctx, q, meetingID, true); err != nil {
		return nil, err
	}
	if s.ender == nil {
		return nil, nil
	}

	event, err := s.ender.EndEventByMeetingID(ctx, q, meetingID)
	if errors.Is(err, domain.ErrNotFound) {
		s.logger.InfoContext(ctx, "meeting ended without an event", slog.String("meeting_id", meetingID))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errEventNotEnded, err)
	}

	if eventID != nil && *eventID != event.ID {
		s.logger.WarnContext(ctx, "callback event id does not match meeting owner",
			slog.String("meeting_id", meetingID),
			slog.String("callback_event_id", eventID.String()),
			slog.String("event_id", event.ID.String()))
	}
	return event, nil
}
