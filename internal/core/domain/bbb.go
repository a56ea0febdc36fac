// internal/core/domain/bbb.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BbbMeeting is the persisted record of a meeting created on the BBB server
type BbbMeeting struct {
	ID                   uuid.UUID  `json:"id"`
	MeetingID            string     `json:"meeting_id"`
	InternalMeetingID    string     `json:"internal_meeting_id"`
	ParentMeetingID      string     `json:"parent_meeting_id,omitempty"`
	AttendeePW           string     `json:"attendee_pw,omitempty"`
	ModeratorPW          string     `json:"moderator_pw,omitempty"`
	CreateTime           int64      `json:"create_time"`
	VoiceBridge          string     `json:"voice_bridge,omitempty"`
	DialNumber           string     `json:"dial_number,omitempty"`
	HasUserJoined        bool       `json:"has_user_joined"`
	Duration             int        `json:"duration"`
	HasBeenForciblyEnded bool       `json:"has_been_forcibly_ended"`
	MessageKey           string     `json:"message_key,omitempty"`
	Message              string     `json:"message,omitempty"`
	UserID               uuid.UUID  `json:"user_id"`
	EventID              *uuid.UUID `json:"event_id,omitempty"`
	IsEnded              bool       `json:"is_ended"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// PrepareForStorage sets identifiers and timestamps
func (m *BbbMeeting) PrepareForStorage() {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	now := time.Now().UTC()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
}

// CreateMeetingRequest describes a meeting to create on the BBB server
type CreateMeetingRequest struct {
	Name                    string `json:"name"`
	MeetingID               string `json:"meeting_id"`
	AttendeePW              string `json:"attendee_pw,omitempty"`
	ModeratorPW             string `json:"moderator_pw,omitempty"`
	Welcome                 string `json:"welcome,omitempty"`
	MaxParticipants         int    `json:"max_participants,omitempty"`
	Duration                int    `json:"duration,omitempty"`
	Record                  bool   `json:"record,omitempty"`
	AutoStartRecording      bool   `json:"auto_start_recording,omitempty"`
	AllowStartStopRecording bool   `json:"allow_start_stop_recording,omitempty"`
	ModeratorOnlyMessage    string `json:"moderator_only_message,omitempty"`
	LogoURL                 string `json:"logo_url,omitempty"`
	MeetingEndedURL         string `json:"meeting_ended_url,omitempty"`
}

// Validate performs domain validation on the request
func (r *CreateMeetingRequest) Validate() error {
	if r.Name == "" {
		return Invalid("name", "is required")
	}
	if r.MeetingID == "" {
		return Invalid("meeting_id", "is required")
	}
	return nil
}

// CreateMeetingResult is the server's answer to a create call
type CreateMeetingResult struct {
	MeetingID            string `json:"meeting_id"`
	InternalMeetingID    string `json:"internal_meeting_id"`
	ParentMeetingID      string `json:"parent_meeting_id"`
	AttendeePW           string `json:"attendee_pw"`
	ModeratorPW          string `json:"moderator_pw"`
	CreateTime           int64  `json:"create_time"`
	VoiceBridge          string `json:"voice_bridge"`
	DialNumber           string `json:"dial_number"`
	HasUserJoined        bool   `json:"has_user_joined"`
	Duration             int    `json:"duration"`
	HasBeenForciblyEnded bool   `json:"has_been_forcibly_ended"`
	MessageKey           string `json:"message_key"`
	Message              string `json:"message"`
}

// Attendee is a participant currently in a meeting
type Attendee struct {
	UserID          string `json:"user_id"`
	FullName        string `json:"full_name"`
	Role            string `json:"role"`
	IsPresenter     bool   `json:"is_presenter"`
	IsListeningOnly bool   `json:"is_listening_only"`
	HasJoinedVoice  bool   `json:"has_joined_voice"`
	HasVideo        bool   `json:"has_video"`
}

// MeetingInfo is the live state of a meeting as reported by the BBB server
type MeetingInfo struct {
	MeetingName           string     `json:"meeting_name"`
	MeetingID             string     `json:"meeting_id"`
	InternalMeetingID     string     `json:"internal_meeting_id"`
	CreateTime            int64      `json:"create_time"`
	Running               bool       `json:"running"`
	Recording             bool       `json:"recording"`
	HasBeenForciblyEnded  bool       `json:"has_been_forcibly_ended"`
	StartTime             int64      `json:"start_time"`
	EndTime               int64      `json:"end_time"`
	ParticipantCount      int        `json:"participant_count"`
	ListenerCount         int        `json:"listener_count"`
	VoiceParticipantCount int        `json:"voice_participant_count"`
	VideoCount            int        `json:"video_count"`
	ModeratorCount        int        `json:"moderator_count"`
	Attendees             []Attendee `json:"attendees"`
}

// MeetingStatus is the result of an is-running check
type MeetingStatus struct {
	MeetingID string `json:"meeting_id"`
	Running   bool   `json:"running"`
}

// MeetingEnded is the payload delivered by the BBB meeting-ended callback
type MeetingEnded struct {
	MeetingID string     `json:"meeting_id"`
	EventID   *uuid.UUID `json:"event_id,omitempty"`
}

// APIError is a FAILED answer from the BBB server
type APIError struct {
	ReturnCode string `json:"return_code"`
	MessageKey string `json:"message_key"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bbb %s: %s: %s", e.ReturnCode, e.MessageKey, e.Message)
}

// Is lets errors.Is(err, ErrNotFound) match unknown-meeting answers
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.MessageKey == "notFound"
}
