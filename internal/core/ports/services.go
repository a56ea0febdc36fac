// internal/core/ports/services.go
package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
)

// Application service ports. Plain services and their caching decorators both
// implement these, so handlers never know whether a read was cached.

type UserService interface {
	GetUserByID(ctx context.Context, q DBTX, id uuid.UUID) (*domain.User, error)
	GetUserByKeycloakID(ctx context.Context, q DBTX, keycloakID string) (*domain.User, error)
	GetUserRoles(ctx context.Context, q DBTX, id uuid.UUID) ([]string, error)
	ListUsers(ctx context.Context, q DBTX, skip, limit int) ([]*domain.User, error)
	UpdateProfile(ctx context.Context, q DBTX, id uuid.UUID, update domain.UserUpdate) (*domain.User, error)
	UpdateRole(ctx context.Context, q DBTX, id uuid.UUID, role string) (*domain.User, error)
}

type ChannelService interface {
	ListChannels(ctx context.Context, q DBTX) ([]*domain.Channel, error)
	ListChannelsByUser(ctx context.Context, q DBTX, userID uuid.UUID) ([]*domain.Channel, error)
	GetChannelByID(ctx context.Context, q DBTX, id uuid.UUID) (*domain.Channel, error)
	GetChannelByName(ctx context.Context, q DBTX, name string, userID uuid.UUID) (*domain.Channel, error)
	GetChannelRecordings(ctx context.Context, q DBTX, channelID, userID uuid.UUID) (*domain.ChannelRecordings, error)
	CreateChannel(ctx context.Context, q DBTX, input domain.ChannelInput, userID uuid.UUID) (*domain.Channel, error)
	UpdateChannel(ctx context.Context, q DBTX, id uuid.UUID, input domain.ChannelInput, userID uuid.UUID) (*domain.Channel, error)
	DeleteChannel(ctx context.Context, q DBTX, id, userID uuid.UUID) error
	GetOrCreateChannel(ctx context.Context, q DBTX, name string, userID uuid.UUID) (*domain.Channel, bool, error)
}

type EventService interface {
	ListEvents(ctx context.Context, q DBTX) ([]*domain.Event, error)
	ListEventsByStatus(ctx context.Context, q DBTX, status domain.EventStatus, userID *uuid.UUID) ([]*domain.Event, error)
	ListUpcoming(ctx context.Context, q DBTX, userID *uuid.UUID) ([]*domain.Event, error)
	ListPast(ctx context.Context, q DBTX, userID *uuid.UUID) ([]*domain.Event, error)
	ListLive(ctx context.Context, q DBTX, userID *uuid.UUID) ([]*domain.Event, error)
	GetEventByID(ctx context.Context, q DBTX, id uuid.UUID) (*domain.Event, error)
	ListEventsByChannel(ctx context.Context, q DBTX, channelID uuid.UUID) ([]*domain.Event, error)
	JoinEvent(ctx context.Context, q DBTX, id, userID uuid.UUID, fullName string) (*domain.JoinLinks, error)
	CreateEvent(ctx context.Context, q DBTX, input domain.EventCreate, userID uuid.UUID) (*domain.Event, error)
	StartEvent(ctx context.Context, q DBTX, id, userID uuid.UUID) (*domain.JoinLinks, error)
	EndEvent(ctx context.Context, q DBTX, id, userID uuid.UUID) (*domain.Event, error)
	EndEventByMeetingID(ctx context.Context, q DBTX, meetingID string) (*domain.Event, error)
	CancelEvent(ctx context.Context, q DBTX, id, userID uuid.UUID) (*domain.Event, error)
	UpdateEvent(ctx context.Context, q DBTX, id uuid.UUID, update domain.EventUpdate, userID uuid.UUID) (*domain.Event, error)
	DeleteEvent(ctx context.Context, q DBTX, id, userID uuid.UUID) error
}

type RtmpService interface {
	ListEndpoints(ctx context.Context, q DBTX) ([]*domain.RtmpEndpoint, error)
	ListEndpointsByUser(ctx context.Context, q DBTX, userID uuid.UUID) ([]*domain.RtmpEndpoint, error)
	GetEndpointByID(ctx context.Context, q DBTX, id uuid.UUID) (*domain.RtmpEndpoint, error)
	CreateEndpoint(ctx context.Context, q DBTX, input domain.RtmpEndpointInput, userID uuid.UUID) (*domain.RtmpEndpoint, error)
	UpdateEndpoint(ctx context.Context, q DBTX, id uuid.UUID, update domain.RtmpEndpointUpdate, userID uuid.UUID) (*domain.RtmpEndpoint, error)
	DeleteEndpoint(ctx context.Context, q DBTX, id, userID uuid.UUID) error
}

type BBBService interface {
	CreateMeeting(ctx context.Context, q DBTX, req domain.CreateMeetingRequest, userID uuid.UUID, eventID *uuid.UUID) (*domain.BbbMeeting, error)
	EndMeeting(ctx context.Context, q DBTX, meetingID, password string) error
	IsMeetingRunning(ctx context.Context, meetingID string) (*domain.MeetingStatus, error)
	GetMeetingInfo(ctx context.Context, meetingID, password string) (*domain.MeetingInfo, error)
	GetMeetings(ctx context.Context) ([]domain.MeetingInfo, error)
	GetRecordings(ctx context.Context, meetingIDs []string) ([]domain.Recording, error)
	JoinURL(meetingID, fullName, password, userID string) string
	UpdateMeetingStatus(ctx context.Context, q DBTX, meetingID string, ended bool) (*domain.BbbMeeting, error)
	MeetingEndedCallback(ctx context.Context, q DBTX, meetingID string, eventID *uuid.UUID) (*domain.Event, error)
}

// EventEnder ends the event that owns a BBB meeting
type EventEnder interface {
	EndEventByMeetingID(ctx context.Context, q DBTX, meetingID string) (*domain.Event, error)
}
