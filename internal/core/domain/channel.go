// internal/core/domain/channel.go
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Channel groups the events a user streams under one name
type Channel struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatorID uuid.UUID `json:"creator_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate performs domain validation on the channel
func (c *Channel) Validate() error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return Invalid("name", "is required")
	}
	if len(c.Name) > 255 {
		return Invalid("name", "must be at most 255 characters")
	}
	if c.CreatorID == uuid.Nil {
		return Invalid("creator_id", "is required")
	}
	return nil
}

// PrepareForStorage sets identifiers and timestamps
func (c *Channel) PrepareForStorage() {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
}

// ChannelInput is the payload for creating or renaming a channel
type ChannelInput struct {
	Name string `json:"name"`
}

// Recording is a BBB recording surfaced through a channel
type Recording struct {
	RecordID  string            `json:"record_id"`
	MeetingID string            `json:"meeting_id"`
	Name      string            `json:"name"`
	Published bool              `json:"published"`
	State     string            `json:"state"`
	StartTime int64             `json:"start_time"`
	EndTime   int64             `json:"end_time"`
	Playback  []RecordingFormat `json:"playback"`
}

// RecordingFormat is one playback rendition of a recording
type RecordingFormat struct {
	Type   string `json:"type"`
	URL    string `json:"url"`
	Length int    `json:"length"`
}

// ChannelRecordings lists the recordings of every meeting held in a channel
type ChannelRecordings struct {
	ChannelID  uuid.UUID   `json:"channel_id"`
	Recordings []Recording `json:"recordings"`
	Total      int         `json:"total"`
}
