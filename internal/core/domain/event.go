// internal/core/domain/event.go
package domain

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EventStatus is the lifecycle state of an event
type EventStatus string

// Status constants
const (
	EventScheduled EventStatus = "scheduled"
	EventLive      EventStatus = "live"
	EventEnded     EventStatus = "ended"
	EventCancelled EventStatus = "cancelled"
)

// Valid reports whether s is a known status
func (s EventStatus) Valid() bool {
	switch s {
	case EventScheduled, EventLive, EventEnded, EventCancelled:
		return true
	}
	return false
}

// Occurrence describes how often an event repeats
type Occurrence string

// Occurrence constants
const (
	OccursOnce    Occurrence = "once"
	OccursDaily   Occurrence = "daily"
	OccursWeekly  Occurrence = "weekly"
	OccursMonthly Occurrence = "monthly"
)

const maxMeetingSlugLength = 32

// Event is a scheduled stream backed by a BBB meeting
type Event struct {
	ID              uuid.UUID   `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description,omitempty"`
	Occurs          Occurrence  `json:"occurs"`
	StartDate       time.Time   `json:"start_date"`
	EndDate         time.Time   `json:"end_date"`
	StartTime       time.Time   `json:"start_time"`
	Timezone        string      `json:"timezone"`
	CreatorID       uuid.UUID   `json:"creator_id"`
	ChannelID       uuid.UUID   `json:"channel_id"`
	OrganizerIDs    []uuid.UUID `json:"organizer_ids"`
	MeetingID       string      `json:"meeting_id"`
	ModeratorPW     string      `json:"moderator_pw,omitempty"`
	AttendeePW      string      `json:"attendee_pw,omitempty"`
	MeetingCreated  bool        `json:"meeting_created"`
	Status          EventStatus `json:"status"`
	ActualStartTime *time.Time  `json:"actual_start_time,omitempty"`
	ActualEndTime   *time.Time  `json:"actual_end_time,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// Validate performs domain validation on the event
func (e *Event) Validate() error {
	e.Title = strings.TrimSpace(e.Title)
	if e.Title == "" {
		return Invalid("title", "is required")
	}
	if e.CreatorID == uuid.Nil {
		return Invalid("creator_id", "is required")
	}
	if e.StartTime.IsZero() {
		return Invalid("start_time", "is required")
	}
	if !e.EndDate.IsZero() && !e.StartDate.IsZero() && e.EndDate.Before(e.StartDate) {
		return Invalid("end_date", "must not be before start_date")
	}
	if e.Occurs == "" {
		e.Occurs = OccursOnce
	}
	switch e.Occurs {
	case OccursOnce, OccursDaily, OccursWeekly, OccursMonthly:
	default:
		return Invalid("occurs", "must be one of once, daily, weekly, monthly")
	}
	if e.Timezone == "" {
		e.Timezone = "UTC"
	}
	if _, err := time.LoadLocation(e.Timezone); err != nil {
		return Invalid("timezone", "is not a known IANA zone")
	}
	if e.Status == "" {
		e.Status = EventScheduled
	}
	return nil
}

// PrepareForStorage sets identifiers, meeting credentials and timestamps
func (e *Event) PrepareForStorage() {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.MeetingID == "" {
		e.MeetingID = MeetingIDFromTitle(e.Title)
	}
	if e.ModeratorPW == "" {
		e.ModeratorPW = RandomPassword()
	}
	if e.AttendeePW == "" {
		e.AttendeePW = RandomPassword()
	}
	if e.StartDate.IsZero() {
		e.StartDate = e.StartTime
	}
	if e.EndDate.IsZero() {
		e.EndDate = e.StartDate
	}
	now := time.Now().UTC()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	e.UpdatedAt = now
}

// Start moves a scheduled event to live. Starting a live event is a no-op.
func (e *Event) Start(now time.Time) error {
	switch e.Status {
	case EventLive:
		return nil
	case EventScheduled:
		e.Status = EventLive
		e.ActualStartTime = &now
		e.UpdatedAt = now
		return nil
	}
	return fmt.Errorf("cannot start %s event: %w", e.Status, ErrInvalidTransition)
}

// End moves a live event to ended
func (e *Event) End(now time.Time) error {
	if e.Status != EventLive {
		return fmt.Errorf("cannot end %s event: %w", e.Status, ErrInvalidTransition)
	}
	e.Status = EventEnded
	e.ActualEndTime = &now
	e.UpdatedAt = now
	return nil
}

// Cancel moves a scheduled event to cancelled
func (e *Event) Cancel(now time.Time) error {
	if e.Status != EventScheduled {
		return fmt.Errorf("cannot cancel %s event: %w", e.Status, ErrInvalidTransition)
	}
	e.Status = EventCancelled
	e.UpdatedAt = now
	return nil
}

// IsOrganizer reports whether userID is the creator or a listed organizer
func (e *Event) IsOrganizer(userID uuid.UUID) bool {
	if e.CreatorID == userID {
		return true
	}
	for _, id := range e.OrganizerIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// MeetingIDFromTitle derives a BBB meeting id: the title with spaces
// replaced, truncated, and suffixed with 8 random hex characters.
func MeetingIDFromTitle(title string) string {
	slug := strings.ReplaceAll(strings.TrimSpace(title), " ", "_")
	if len(slug) > maxMeetingSlugLength {
		slug = slug[:maxMeetingSlugLength]
	}
	suffix := make([]byte, 4)
	_, _ = rand.Read(suffix)
	return slug + "_" + hex.EncodeToString(suffix)
}

// RandomPassword returns a url-safe random token
func RandomPassword() string {
	b := make([]byte, 12)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}

// EventCreate is the payload for creating an event
type EventCreate struct {
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Occurs       Occurrence  `json:"occurs"`
	StartDate    time.Time   `json:"start_date"`
	EndDate      time.Time   `json:"end_date"`
	StartTime    time.Time   `json:"start_time"`
	Timezone     string      `json:"timezone"`
	ChannelName  string      `json:"channel_name"`
	OrganizerIDs []uuid.UUID `json:"organizer_ids"`
}

// EventUpdate carries mutable event fields. Nil fields are left unchanged.
type EventUpdate struct {
	Title        *string      `json:"title,omitempty"`
	Description  *string      `json:"description,omitempty"`
	Occurs       *Occurrence  `json:"occurs,omitempty"`
	StartDate    *time.Time   `json:"start_date,omitempty"`
	EndDate      *time.Time   `json:"end_date,omitempty"`
	StartTime    *time.Time   `json:"start_time,omitempty"`
	Timezone     *string      `json:"timezone,omitempty"`
	OrganizerIDs *[]uuid.UUID `json:"organizer_ids,omitempty"`
}

// Apply copies the set fields onto event
func (u *EventUpdate) Apply(e *Event) {
	if u.Title != nil {
		e.Title = *u.Title
	}
	if u.Description != nil {
		e.Description = *u.Description
	}
	if u.Occurs != nil {
		e.Occurs = *u.Occurs
	}
	if u.StartDate != nil {
		e.StartDate = *u.StartDate
	}
	if u.EndDate != nil {
		e.EndDate = *u.EndDate
	}
	if u.StartTime != nil {
		e.StartTime = *u.StartTime
	}
	if u.Timezone != nil {
		e.Timezone = *u.Timezone
	}
	if u.OrganizerIDs != nil {
		e.OrganizerIDs = *u.OrganizerIDs
	}
}

// JoinLinks holds the BBB join URLs handed out for an event
type JoinLinks struct {
	EventID      uuid.UUID `json:"event_id"`
	MeetingID    string    `json:"meeting_id"`
	AttendeeURL  string    `json:"attendee_join_url"`
	ModeratorURL string    `json:"moderator_join_url,omitempty"`
}

// EventFilter narrows event list queries
type EventFilter struct {
	Status    EventStatus
	UserID    *uuid.UUID
	ChannelID *uuid.UUID
}
