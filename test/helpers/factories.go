// test/helpers/factories.go
package helpers

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
)

// CreateTestUser builds a valid user ready for storage
func CreateTestUser(overrides ...func(*domain.User)) *domain.User {
	suffix := uuid.NewString()[:8]
	user := &domain.User{
		ID:         uuid.New(),
		KeycloakID: "kc-" + suffix,
		Username:   "user_" + suffix,
		Email:      fmt.Sprintf("user_%s@example.com", suffix),
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Roles:      domain.DefaultUserRole,
		IsActive:   true,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}

	for _, override := range overrides {
		override(user)
	}

	return user
}

// CreateTestChannel builds a channel owned by creatorID
func CreateTestChannel(creatorID uuid.UUID, overrides ...func(*domain.Channel)) *domain.Channel {
	channel := &domain.Channel{
		ID:        uuid.New(),
		Name:      "channel-" + uuid.NewString()[:8],
		CreatorID: creatorID,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	for _, override := range overrides {
		override(channel)
	}

	return channel
}

// CreateTestEvent builds a scheduled event in channelID starting in an hour
func CreateTestEvent(creatorID, channelID uuid.UUID, overrides ...func(*domain.Event)) *domain.Event {
	start := time.Now().UTC().Add(time.Hour).Truncate(time.Second)
	event := &domain.Event{
		Title:        "Weekly Standup",
		Description:  "Team sync",
		Occurs:       domain.OccursOnce,
		StartTime:    start,
		Timezone:     "UTC",
		CreatorID:    creatorID,
		ChannelID:    channelID,
		OrganizerIDs: []uuid.UUID{},
		Status:       domain.EventScheduled,
	}

	for _, override := range overrides {
		override(event)
	}

	event.PrepareForStorage()
	return event
}

// CreateTestEndpoint builds an RTMP endpoint owned by userID
func CreateTestEndpoint(userID uuid.UUID, overrides ...func(*domain.RtmpEndpoint)) *domain.RtmpEndpoint {
	endpoint := &domain.RtmpEndpoint{
		ID:        uuid.New(),
		Title:     "Primary ingest",
		StreamKey: "sk-" + uuid.NewString(),
		RtmpURL:   "rtmp://live.example.com/app",
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	for _, override := range overrides {
		override(endpoint)
	}

	return endpoint
}

// SeedUser stores a user through repo and fails the test on error
func SeedUser(t *testing.T, q ports.DBTX, repo ports.UserRepository, overrides ...func(*domain.User)) *domain.User {
	t.Helper()

	user := CreateTestUser(overrides...)
	require.NoError(t, repo.Create(context.Background(), q, user), "Failed to seed user")
	return user
}

// SeedChannel stores a channel through repo and fails the test on error
func SeedChannel(t *testing.T, q ports.DBTX, repo ports.ChannelRepository, creatorID uuid.UUID, overrides ...func(*domain.Channel)) *domain.Channel {
	t.Helper()

	channel := CreateTestChannel(creatorID, overrides...)
	require.NoError(t, repo.Create(context.Background(), q, channel), "Failed to seed channel")
	return channel
}

// SeedEvent stores an event through repo and fails the test on error
func SeedEvent(t *testing.T, q ports.DBTX, repo ports.EventRepository, creatorID, channelID uuid.UUID, overrides ...func(*domain.Event)) *domain.Event {
	t.Helper()

	event := CreateTestEvent(creatorID, channelID, overrides...)
	require.NoError(t, repo.Create(context.Background(), q, event), "Failed to seed event")
	return event
}
