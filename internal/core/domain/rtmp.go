// internal/core/domain/rtmp.go
package domain

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RtmpEndpoint is a user's outbound stream target
type RtmpEndpoint struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	StreamKey string    `json:"stream_key"`
	RtmpURL   string    `json:"rtmp_url"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate performs domain validation on the endpoint
func (r *RtmpEndpoint) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return Invalid("title", "is required")
	}
	if strings.TrimSpace(r.StreamKey) == "" {
		return Invalid("stream_key", "is required")
	}
	u, err := url.Parse(r.RtmpURL)
	if err != nil || (u.Scheme != "rtmp" && u.Scheme != "rtmps") || u.Host == "" {
		return Invalid("rtmp_url", "must be an rtmp:// or rtmps:// url")
	}
	if r.UserID == uuid.Nil {
		return Invalid("user_id", "is required")
	}
	return nil
}

// PrepareForStorage sets identifiers and timestamps
func (r *RtmpEndpoint) PrepareForStorage() {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	now := time.Now().UTC()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
}

// RtmpEndpointInput is the payload for creating an endpoint
type RtmpEndpointInput struct {
	Title     string `json:"title"`
	StreamKey string `json:"stream_key"`
	RtmpURL   string `json:"rtmp_url"`
}

// RtmpEndpointUpdate carries mutable endpoint fields
type RtmpEndpointUpdate struct {
	Title     *string `json:"title,omitempty"`
	StreamKey *string `json:"stream_key,omitempty"`
	RtmpURL   *string `json:"rtmp_url,omitempty"`
}

// Apply copies the set fields onto endpoint
func (u *RtmpEndpointUpdate) Apply(r *RtmpEndpoint) {
	if u.Title != nil {
		r.Title = *u.Title
	}
	if u.StreamKey != nil {
		r.StreamKey = *u.StreamKey
	}
	if u.RtmpURL != nil {
		r.RtmpURL = *u.RtmpURL
	}
}
