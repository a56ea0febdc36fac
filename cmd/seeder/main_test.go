package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/test/helpers"
)

func TestApply(t *testing.T) {
	ctx := context.Background()
	q := helpers.NewNopDB()
	mem := helpers.NewMemoryDB()
	repos := repositories{
		users:     mem.Users(),
		channels:  mem.Channels(),
		events:    mem.Events(),
		endpoints: mem.Endpoints(),
	}
	now := time.Now().UTC()

	stats, err := apply(ctx, q, repos, demoSeed(), now)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Users)
	assert.Equal(t, 2, stats.Channels)
	assert.Equal(t, 3, stats.Events)
	assert.Equal(t, 2, stats.Endpoints)
	assert.Zero(t, stats.Skipped)

	streamer, err := mem.Users().FindByKeycloakID(ctx, q, "kc-streamer")
	require.NoError(t, err)
	channels, err := mem.Channels().ListByCreator(ctx, q, streamer.ID)
	require.NoError(t, err)
	assert.Len(t, channels, 2)

	events, err := mem.Events().List(ctx, q, domain.EventFilter{})
	require.NoError(t, err)
	for _, e := range events {
		assert.NotEmpty(t, e.MeetingID)
		assert.Equal(t, domain.EventScheduled, e.Status)
	}

	t.Run("rerun_skips_existing_users", func(t *testing.T) {
		stats, err := apply(ctx, q, repos, demoSeed(), now)
		require.NoError(t, err)
		assert.Equal(t, 3, stats.Skipped)
		assert.Zero(t, stats.Users)
	})
}
