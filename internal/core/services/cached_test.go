package services_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	redis_a "github.com/ammerola/spoutbreeze-be/internal/adapters/redis_adapter"
	"github.com/ammerola/spoutbreeze-be/internal/core/cache"
	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
	"github.com/ammerola/spoutbreeze-be/internal/core/services"
	"github.com/ammerola/spoutbreeze-be/test/helpers"
	"github.com/ammerola/spoutbreeze-be/test/mocks"
)

type cachedFixture struct {
	db     *helpers.MemoryDB
	server *helpers.FakeBBB
	mr     *miniredis.Miniredis
	q      *helpers.NopDB
	set    *services.Set
	owner  *domain.User
}

func newCachedFixture(t *testing.T) *cachedFixture {
	t.Helper()
	store, mr := helpers.NewTestStore(t)
	f := buildCachedFixture(t, store)
	f.mr = mr
	return f
}

func buildCachedFixture(t *testing.T, store ports.CacheStore) *cachedFixture {
	t.Helper()

	logger := helpers.TestLogger()
	db := helpers.NewMemoryDB()
	server := helpers.NewFakeBBB()
	q := helpers.NewNopDB()

	set := services.NewSet(services.Deps{
		Users:       db.Users(),
		Channels:    db.Channels(),
		Events:      db.Events(),
		Endpoints:   db.Endpoints(),
		Meetings:    db.Meetings(),
		BBB:         server,
		ReadThrough: cache.NewReadThrough(store, logger),
		Invalidator: cache.NewInvalidator(store, nil, logger),
		TTLs:        cache.DefaultTTLs(),
		Logger:      logger,
	})

	return &cachedFixture{
		db:     db,
		server: server,
		q:      q,
		set:    set,
		owner:  helpers.SeedUser(t, q, db.Users()),
	}
}

func (f *cachedFixture) keys(prefix string) []string {
	var out []string
	for _, k := range f.mr.Keys() {
		if strings.HasPrefix(k, prefix+":") {
			out = append(out, k)
		}
	}
	return out
}

func (f *cachedFixture) createEvent(t *testing.T, title string) *domain.Event {
	t.Helper()
	event, err := f.set.Events.CreateEvent(context.Background(), f.q, domain.EventCreate{
		Title:       title,
		StartTime:   time.Now().UTC().Add(time.Hour),
		ChannelName: "studio",
	}, f.owner.ID)
	require.NoError(t, err)
	return event
}

func joinName(t *testing.T, link string) string {
	t.Helper()
	u, err := url.Parse(link)
	require.NoError(t, err)
	return u.Query().Get("fullName")
}

func TestCachedUserService(t *testing.T) {
	t.Run("second_read_is_served_from_cache", func(t *testing.T) {
		f := newCachedFixture(t)
		ctx := context.Background()

		first, err := f.set.Users.GetUserByID(ctx, f.q, f.owner.ID)
		require.NoError(t, err)
		second, err := f.set.Users.GetUserByID(ctx, f.q, f.owner.ID)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.Email, second.Email)
		assert.Equal(t, 1, f.db.Calls("users.FindByID"))
		require.Len(t, f.keys(cache.PrefixUserProfile), 1)
		assert.Contains(t, f.keys(cache.PrefixUserProfile)[0], f.owner.ID.String())
	})

	t.Run("profile_update_invalidates_every_user_read", func(t *testing.T) {
		f := newCachedFixture(t)
		ctx := context.Background()

		_, err := f.set.Users.GetUserByID(ctx, f.q, f.owner.ID)
		require.NoError(t, err)
		_, err = f.set.Users.GetUserByKeycloakID(ctx, f.q, f.owner.KeycloakID)
		require.NoError(t, err)
		_, err = f.set.Users.ListUsers(ctx, f.q, 0, 10)
		require.NoError(t, err)
		_, err = f.set.Users.GetUserRoles(ctx, f.q, f.owner.ID)
		require.NoError(t, err)

		name := "Grace"
		_, err = f.set.Users.UpdateProfile(ctx, f.q, f.owner.ID, domain.UserUpdate{FirstName: &name})
		require.NoError(t, err)

		for _, prefix := range []string{cache.PrefixUserProfile, cache.PrefixUserKeycloak, cache.PrefixUsersList, cache.PrefixUserRoles} {
			assert.Empty(t, f.keys(prefix), prefix)
		}

		got, err := f.set.Users.GetUserByKeycloakID(ctx, f.q, f.owner.KeycloakID)
		require.NoError(t, err)
		assert.Equal(t, "Grace", got.FirstName)
	})

	t.Run("rename_refreshes_join_links", func(t *testing.T) {
		f := newCachedFixture(t)
		ctx := context.Background()
		event := f.createEvent(t, "Town hall")
		_, err := f.set.Events.StartEvent(ctx, f.q, event.ID, f.owner.ID)
		require.NoError(t, err)

		links, err := f.set.Events.JoinEvent(ctx, f.q, event.ID, f.owner.ID, "")
		require.NoError(t, err)
		assert.Equal(t, f.owner.FullName(), joinName(t, links.AttendeeURL))
		require.Len(t, f.keys(cache.PrefixEventsJoin), 1)

		name := "Grace"
		renamed, err := f.set.Users.UpdateProfile(ctx, f.q, f.owner.ID, domain.UserUpdate{FirstName: &name})
		require.NoError(t, err)
		assert.Empty(t, f.keys(cache.PrefixEventsJoin))

		links, err = f.set.Events.JoinEvent(ctx, f.q, event.ID, f.owner.ID, "")
		require.NoError(t, err)
		assert.Equal(t, renamed.FullName(), joinName(t, links.AttendeeURL))
	})

	t.Run("role_change_is_visible_immediately", func(t *testing.T) {
		f := newCachedFixture(t)
		ctx := context.Background()

		roles, err := f.set.Users.GetUserRoles(ctx, f.q, f.owner.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{domain.DefaultUserRole}, roles)

		_, err = f.set.Users.UpdateRole(ctx, f.q, f.owner.ID, domain.RoleAdmin)
		require.NoError(t, err)

		roles, err = f.set.Users.GetUserRoles(ctx, f.q, f.owner.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{domain.RoleAdmin}, roles)
	})

	t.Run("misses_are_not_cached", func(t *testing.T) {
		f := newCachedFixture(t)
		ctx := context.Background()
		missing := helpers.CreateTestUser()

		for range 2 {
			_, err := f.set.Users.GetUserByID(ctx, f.q, missing.ID)
			assert.ErrorIs(t, err, domain.ErrNotFound)
		}

		assert.Equal(t, 2, f.db.Calls("users.FindByID"))
		assert.Empty(t, f.keys(cache.PrefixUserProfile))
	})

	t.Run("admin_invalidation_helper", func(t *testing.T) {
		f := newCachedFixture(t)
		ctx := context.Background()

		_, err := f.set.Users.GetUserByID(ctx, f.q, f.owner.ID)
		require.NoError(t, err)

		failed := f.set.Users.InvalidateUser(ctx, f.owner.ID, f.owner.KeycloakID)

		assert.Empty(t, failed)
		assert.Empty(t, f.keys(cache.PrefixUserProfile))
	})
}

func TestCachedEventService_Lifecycle(t *testing.T) {
	f := newCachedFixture(t)
	ctx := context.Background()

	upcoming, err := f.set.Events.ListUpcoming(ctx, f.q, nil)
	require.NoError(t, err)
	assert.Empty(t, upcoming)

	event := f.createEvent(t, "Launch stream")

	upcoming, err = f.set.Events.ListUpcoming(ctx, f.q, nil)
	require.NoError(t, err)
	require.Len(t, upcoming, 1, "create must drop the cached empty list")
	assert.Equal(t, event.ID, upcoming[0].ID)

	byID, err := f.set.Events.GetEventByID(ctx, f.q, event.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EventScheduled, byID.Status)

	_, err = f.set.Events.StartEvent(ctx, f.q, event.ID, f.owner.ID)
	require.NoError(t, err)

	upcoming, err = f.set.Events.ListUpcoming(ctx, f.q, nil)
	require.NoError(t, err)
	assert.Empty(t, upcoming)

	live, err := f.set.Events.ListLive(ctx, f.q, nil)
	require.NoError(t, err)
	require.Len(t, live, 1)

	byID, err = f.set.Events.GetEventByID(ctx, f.q, event.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EventLive, byID.Status)

	// The meeting ends on the server and the callback arrives.
	f.server.Stop(event.MeetingID)
	ended, err := f.set.BBB.MeetingEndedCallback(ctx, f.q, event.MeetingID, &event.ID)
	require.NoError(t, err)
	require.NotNil(t, ended)
	assert.Equal(t, domain.EventEnded, ended.Status)

	live, err = f.set.Events.ListLive(ctx, f.q, nil)
	require.NoError(t, err)
	assert.Empty(t, live)

	past, err := f.set.Events.ListPast(ctx, f.q, nil)
	require.NoError(t, err)
	require.Len(t, past, 1)
	assert.Equal(t, event.ID, past[0].ID)

	byID, err = f.set.Events.GetEventByID(ctx, f.q, event.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EventEnded, byID.Status)
}

func TestCachedEventService_HitMatchesColdRead(t *testing.T) {
	f := newCachedFixture(t)
	ctx := context.Background()
	event := f.createEvent(t, "Round trip")

	cold, err := f.set.Events.GetEventByID(ctx, f.q, event.ID)
	require.NoError(t, err)
	require.NotEmpty(t, cold.ModeratorPW)
	require.NotEmpty(t, cold.AttendeePW)

	f.db.ResetCalls()
	hit, err := f.set.Events.GetEventByID(ctx, f.q, event.ID)
	require.NoError(t, err)

	assert.Zero(t, f.db.Calls("events.FindByID"))
	assert.Equal(t, cold, hit)
}

func TestCachedEventService_CreateRefreshesChannels(t *testing.T) {
	f := newCachedFixture(t)
	ctx := context.Background()

	channels, err := f.set.Channels.ListChannelsByUser(ctx, f.q, f.owner.ID)
	require.NoError(t, err)
	assert.Empty(t, channels)

	f.createEvent(t, "First show")

	channels, err = f.set.Channels.ListChannelsByUser(ctx, f.q, f.owner.ID)
	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.Equal(t, "studio", channels[0].Name)
}

func TestCachedChannelService_DeleteDropsEvents(t *testing.T) {
	f := newCachedFixture(t)
	ctx := context.Background()
	event := f.createEvent(t, "Doomed")

	byChannel, err := f.set.Events.ListEventsByChannel(ctx, f.q, event.ChannelID)
	require.NoError(t, err)
	require.Len(t, byChannel, 1)
	_, err = f.set.Events.GetEventByID(ctx, f.q, event.ID)
	require.NoError(t, err)

	require.NoError(t, f.set.Channels.DeleteChannel(ctx, f.q, event.ChannelID, f.owner.ID))

	byChannel, err = f.set.Events.ListEventsByChannel(ctx, f.q, event.ChannelID)
	require.NoError(t, err)
	assert.Empty(t, byChannel)

	_, err = f.set.Events.GetEventByID(ctx, f.q, event.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCachedRtmpService_ListReflectsWrites(t *testing.T) {
	f := newCachedFixture(t)
	ctx := context.Background()

	all, err := f.set.Rtmp.ListEndpoints(ctx, f.q)
	require.NoError(t, err)
	assert.Empty(t, all)
	mine, err := f.set.Rtmp.ListEndpointsByUser(ctx, f.q, f.owner.ID)
	require.NoError(t, err)
	assert.Empty(t, mine)

	created, err := f.set.Rtmp.CreateEndpoint(ctx, f.q, domain.RtmpEndpointInput{
		Title:     "YouTube",
		StreamKey: "yt-key",
		RtmpURL:   "rtmp://a.rtmp.youtube.com/live2",
	}, f.owner.ID)
	require.NoError(t, err)

	all, err = f.set.Rtmp.ListEndpoints(ctx, f.q)
	require.NoError(t, err)
	require.Len(t, all, 1)
	mine, err = f.set.Rtmp.ListEndpointsByUser(ctx, f.q, f.owner.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	title := "YouTube main"
	_, err = f.set.Rtmp.UpdateEndpoint(ctx, f.q, created.ID, domain.RtmpEndpointUpdate{Title: &title}, f.owner.ID)
	require.NoError(t, err)

	got, err := f.set.Rtmp.GetEndpointByID(ctx, f.q, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "YouTube main", got.Title)

	require.NoError(t, f.set.Rtmp.DeleteEndpoint(ctx, f.q, created.ID, f.owner.ID))
	all, err = f.set.Rtmp.ListEndpoints(ctx, f.q)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCachedBBBService_EventWritesRefreshMeetingState(t *testing.T) {
	f := newCachedFixture(t)
	ctx := context.Background()
	event := f.createEvent(t, "Office hours")

	status, err := f.set.BBB.IsMeetingRunning(ctx, event.MeetingID)
	require.NoError(t, err)
	assert.False(t, status.Running)

	status, err = f.set.BBB.IsMeetingRunning(ctx, event.MeetingID)
	require.NoError(t, err)
	assert.False(t, status.Running)
	assert.Equal(t, 1, f.server.Calls("isMeetingRunning"))

	meetings, err := f.set.BBB.GetMeetings(ctx)
	require.NoError(t, err)
	assert.Empty(t, meetings)

	_, err = f.set.Events.StartEvent(ctx, f.q, event.ID, f.owner.ID)
	require.NoError(t, err)

	status, err = f.set.BBB.IsMeetingRunning(ctx, event.MeetingID)
	require.NoError(t, err)
	assert.True(t, status.Running, "starting the event must drop the cached running flag")
	assert.Equal(t, 2, f.server.Calls("isMeetingRunning"))

	meetings, err = f.set.BBB.GetMeetings(ctx)
	require.NoError(t, err)
	assert.Len(t, meetings, 1)

	_, err = f.set.Events.EndEvent(ctx, f.q, event.ID, f.owner.ID)
	require.NoError(t, err)

	status, err = f.set.BBB.IsMeetingRunning(ctx, event.MeetingID)
	require.NoError(t, err)
	assert.False(t, status.Running)
}

func TestCachedBBBService_Recordings(t *testing.T) {
	f := newCachedFixture(t)
	ctx := context.Background()
	event := f.createEvent(t, "Recorded talk")
	f.server.AddRecording(event.MeetingID, domain.Recording{RecordID: "rec-1", Published: true})

	recs, err := f.set.Channels.GetChannelRecordings(ctx, f.q, event.ChannelID, f.owner.ID)
	require.NoError(t, err)
	require.Equal(t, 1, recs.Total)
	assert.Equal(t, "rec-1", recs.Recordings[0].RecordID)

	_, err = f.set.Channels.GetChannelRecordings(ctx, f.q, event.ChannelID, f.owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, f.server.Calls("getRecordings"))
	require.Len(t, f.keys(cache.PrefixBBBRecordings), 1)
	assert.Contains(t, f.keys(cache.PrefixBBBRecordings)[0], event.MeetingID)
}

func TestCachedServices_DisabledStore(t *testing.T) {
	store := redis_a.NewStore(redis_a.StoreConfig{}, helpers.TestLogger())
	f := buildCachedFixture(t, store)
	ctx := context.Background()

	for range 3 {
		_, err := f.set.Users.GetUserByID(ctx, f.q, f.owner.ID)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, f.db.Calls("users.FindByID"), "a disabled store passes every read through")

	event := f.createEvent(t, "No cache")
	upcoming, err := f.set.Events.ListUpcoming(ctx, f.q, nil)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, event.ID, upcoming[0].ID)

	assert.Empty(t, f.set.Users.InvalidateUser(ctx, f.owner.ID, f.owner.KeycloakID))
}

func TestCachedServices_FailedWritesKeepCache(t *testing.T) {
	f := newCachedFixture(t)
	ctx := context.Background()
	event := f.createEvent(t, "Stable")

	_, err := f.set.Events.ListUpcoming(ctx, f.q, nil)
	require.NoError(t, err)
	before := f.keys(cache.PrefixEventsUpcoming)
	require.Len(t, before, 1)

	_, err = f.set.Events.EndEvent(ctx, f.q, event.ID, f.owner.ID)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	assert.Equal(t, before, f.keys(cache.PrefixEventsUpcoming))
}

func TestCachedBBBService_MeetingEndedCallbackSweepsAfterStatusUpdate(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(meetings *mocks.MockMeetingRepository, ender *mocks.MockEventEnder)
		wantErr    string
		wantSwept  bool
	}{
		{
			name: "event_step_fails",
			setupMocks: func(meetings *mocks.MockMeetingRepository, ender *mocks.MockEventEnder) {
				meetings.EXPECT().FindByMeetingID(gomock.Any(), gomock.Any(), "m1").
					Return(&domain.BbbMeeting{ID: uuid.New(), MeetingID: "m1"}, nil)
				meetings.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				ender.EXPECT().EndEventByMeetingID(gomock.Any(), gomock.Any(), "m1").
					Return(nil, domain.ErrInvalidTransition)
			},
			wantErr:   "invalid state transition",
			wantSwept: true,
		},
		{
			name: "status_update_fails",
			setupMocks: func(meetings *mocks.MockMeetingRepository, ender *mocks.MockEventEnder) {
				meetings.EXPECT().FindByMeetingID(gomock.Any(), gomock.Any(), "m1").
					Return(nil, errors.New("connection reset"))
			},
			wantErr: "connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			meetings := mocks.NewMockMeetingRepository(ctrl)
			ender := mocks.NewMockEventEnder(ctrl)
			tt.setupMocks(meetings, ender)

			logger := helpers.TestLogger()
			store, mr := helpers.NewTestStore(t)
			inner := services.NewBBBService(mocks.NewMockBBBClient(ctrl), meetings, logger)
			inner.SetEventEnder(ender)
			svc := services.NewCachedBBBService(inner,
				cache.NewReadThrough(store, logger),
				cache.NewInvalidator(store, nil, logger),
				cache.DefaultTTLs())

			running := cache.PrefixBBBIsRunning + ":is_meeting_running:m1:abc"
			require.NoError(t, mr.Set(running, `{"running":true}`))

			_, err := svc.MeetingEndedCallback(context.Background(), helpers.NewNopDB(), "m1", nil)
			assert.ErrorContains(t, err, tt.wantErr)
			assert.Equal(t, !tt.wantSwept, mr.Exists(running))
		})
	}
}
