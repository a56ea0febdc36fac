// internal/core/ports/repositories.go
package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
)

// Persistence ports implemented by the database adapter. Lookups of missing
// rows return domain.ErrNotFound and unique violations domain.ErrConflict.

type UserRepository interface {
	FindByID(ctx context.Context, q DBTX, id uuid.UUID) (*domain.User, error)
	FindByKeycloakID(ctx context.Context, q DBTX, keycloakID string) (*domain.User, error)
	List(ctx context.Context, q DBTX, skip, limit int) ([]*domain.User, error)
	Create(ctx context.Context, q DBTX, user *domain.User) error
	Update(ctx context.Context, q DBTX, user *domain.User) error
}

type ChannelRepository interface {
	List(ctx context.Context, q DBTX) ([]*domain.Channel, error)
	ListByCreator(ctx context.Context, q DBTX, creatorID uuid.UUID) ([]*domain.Channel, error)
	FindByID(ctx context.Context, q DBTX, id uuid.UUID) (*domain.Channel, error)
	FindByName(ctx context.Context, q DBTX, name string, creatorID uuid.UUID) (*domain.Channel, error)
	Create(ctx context.Context, q DBTX, channel *domain.Channel) error
	Update(ctx context.Context, q DBTX, channel *domain.Channel) error
	Delete(ctx context.Context, q DBTX, id uuid.UUID) error
	// MeetingIDs returns the BBB meeting ids of every event in the channel.
	MeetingIDs(ctx context.Context, q DBTX, channelID uuid.UUID) ([]string, error)
}

type EventRepository interface {
	List(ctx context.Context, q DBTX, filter domain.EventFilter) ([]*domain.Event, error)
	FindByID(ctx context.Context, q DBTX, id uuid.UUID) (*domain.Event, error)
	FindByMeetingID(ctx context.Context, q DBTX, meetingID string) (*domain.Event, error)
	Create(ctx context.Context, q DBTX, event *domain.Event) error
	Update(ctx context.Context, q DBTX, event *domain.Event) error
	Delete(ctx context.Context, q DBTX, id uuid.UUID) error
}

type RtmpRepository interface {
	List(ctx context.Context, q DBTX) ([]*domain.RtmpEndpoint, error)
	ListByUser(ctx context.Context, q DBTX, userID uuid.UUID) ([]*domain.RtmpEndpoint, error)
	FindByID(ctx context.Context, q DBTX, id uuid.UUID) (*domain.RtmpEndpoint, error)
	Create(ctx context.Context, q DBTX, endpoint *domain.RtmpEndpoint) error
	Update(ctx context.Context, q DBTX, endpoint *domain.RtmpEndpoint) error
	Delete(ctx context.Context, q DBTX, id uuid.UUID) error
}

type MeetingRepository interface {
	Create(ctx context.Context, q DBTX, meeting *domain.BbbMeeting) error
	FindByMeetingID(ctx context.Context, q DBTX, meetingID string) (*domain.BbbMeeting, error)
	Update(ctx context.Context, q DBTX, meeting *domain.BbbMeeting) error
}
