package workers_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/spoutbreeze-be/internal/core/cache"
	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/internal/core/services"
	"github.com/ammerola/spoutbreeze-be/internal/workers"
	"github.com/ammerola/spoutbreeze-be/test/helpers"
	"github.com/ammerola/spoutbreeze-be/test/mocks"
)

type recordingEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (r *recordingEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.tasks = append(r.tasks, task)
	return &asynq.TaskInfo{ID: "task-1", Type: task.Type()}, nil
}

func TestInvalidationQueue_EnqueueInvalidation(t *testing.T) {
	tests := []struct {
		name        string
		patterns    []string
		enqueueErr  error
		expectTasks int
		expectError bool
	}{
		{
			name:        "enqueues_patterns",
			patterns:    []string{"events_all:*", "events_live:*"},
			expectTasks: 1,
		},
		{
			name:        "nothing_to_enqueue",
			patterns:    nil,
			expectTasks: 0,
		},
		{
			name:        "client_error_is_returned",
			patterns:    []string{"users_list:*"},
			enqueueErr:  errors.New("redis: connection refused"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &recordingEnqueuer{err: tt.enqueueErr}
			queue := workers.NewInvalidationQueue(client, 5)

			err := queue.EnqueueInvalidation(context.Background(), tt.patterns)

			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, client.tasks, tt.expectTasks)
			if tt.expectTasks == 0 {
				return
			}

			task := client.tasks[0]
			assert.Equal(t, workers.TypeCacheInvalidate, task.Type())
			var payload workers.InvalidatePayload
			require.NoError(t, json.Unmarshal(task.Payload(), &payload))
			assert.Equal(t, tt.patterns, payload.Patterns)
		})
	}
}

func TestInvalidationProcessor_ProcessInvalidate(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes_patterns", func(t *testing.T) {
		store, mr := helpers.NewTestStore(t)
		require.NoError(t, mr.Set("events_all:list_events:abc", "[]"))
		require.NoError(t, mr.Set("events_live:list_live:def", "[]"))
		require.NoError(t, mr.Set("users_list:list_users:ghi", "[]"))

		processor := workers.NewInvalidationProcessor(cache.NewInvalidator(store, nil, helpers.TestLogger()), helpers.TestLogger())
		task, err := workers.NewCacheInvalidateTask([]string{"events_all:*", "events_live:*"}, 3)
		require.NoError(t, err)

		require.NoError(t, processor.ProcessInvalidate(ctx, task))

		assert.False(t, mr.Exists("events_all:list_events:abc"))
		assert.False(t, mr.Exists("events_live:list_live:def"))
		assert.True(t, mr.Exists("users_list:list_users:ghi"))
	})

	t.Run("fails_while_store_is_down", func(t *testing.T) {
		store, mr := helpers.NewTestStore(t)
		mr.Close()

		processor := workers.NewInvalidationProcessor(cache.NewInvalidator(store, nil, helpers.TestLogger()), helpers.TestLogger())
		task, err := workers.NewCacheInvalidateTask([]string{"events_all:*"}, 3)
		require.NoError(t, err)

		err = processor.ProcessInvalidate(ctx, task)
		require.Error(t, err)
		assert.False(t, errors.Is(err, asynq.SkipRetry))
	})

	t.Run("malformed_payload_skips_retry", func(t *testing.T) {
		store, _ := helpers.NewTestStore(t)
		processor := workers.NewInvalidationProcessor(cache.NewInvalidator(store, nil, helpers.TestLogger()), helpers.TestLogger())

		err := processor.ProcessInvalidate(ctx, asynq.NewTask(workers.TypeCacheInvalidate, []byte("{")))

		require.Error(t, err)
		assert.True(t, errors.Is(err, asynq.SkipRetry))
	})
}

func TestInvalidator_EnqueuesFailedPatterns(t *testing.T) {
	store, mr := helpers.NewTestStore(t)
	mr.Close()

	client := &recordingEnqueuer{}
	inv := cache.NewInvalidator(store, workers.NewInvalidationQueue(client, 5), helpers.TestLogger())

	failed := inv.Invalidate(context.Background(), cache.RtmpPatterns()...)

	assert.ElementsMatch(t, cache.RtmpPatterns(), failed)
	require.Len(t, client.tasks, 1)
	var payload workers.InvalidatePayload
	require.NoError(t, json.Unmarshal(client.tasks[0].Payload(), &payload))
	assert.ElementsMatch(t, cache.RtmpPatterns(), payload.Patterns)
}

type syncFixture struct {
	db        *helpers.MemoryDB
	server    *helpers.FakeBBB
	set       *services.Set
	processor *workers.MeetingSyncProcessor
	owner     *domain.User
}

func newSyncFixture(t *testing.T) *syncFixture {
	t.Helper()

	logger := helpers.TestLogger()
	store, _ := helpers.NewTestStore(t)
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

	return &syncFixture{
		db:        db,
		server:    server,
		set:       set,
		processor: workers.NewMeetingSyncProcessor(db.Events(), server, set.BBB, q, logger),
		owner:     helpers.SeedUser(t, q, db.Users()),
	}
}

func (f *syncFixture) liveEvent(t *testing.T, title string) *domain.Event {
	t.Helper()

	ctx := context.Background()
	q := helpers.NewNopDB()
	event, err := f.set.Events.CreateEvent(ctx, q, domain.EventCreate{
		Title:       title,
		StartTime:   time.Now().UTC().Add(time.Hour),
		ChannelName: "studio",
	}, f.owner.ID)
	require.NoError(t, err)

	_, err = f.set.Events.StartEvent(ctx, q, event.ID, f.owner.ID)
	require.NoError(t, err)
	return event
}

func TestMeetingSyncProcessor_Sync(t *testing.T) {
	ctx := context.Background()
	q := helpers.NewNopDB()

	t.Run("ends_events_whose_meeting_stopped", func(t *testing.T) {
		f := newSyncFixture(t)
		stopped := f.liveEvent(t, "Stopped Show")
		running := f.liveEvent(t, "Running Show")

		live, err := f.set.Events.ListLive(ctx, q, nil)
		require.NoError(t, err)
		require.Len(t, live, 2)

		f.server.Stop(stopped.MeetingID)

		result, err := f.processor.Sync(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Checked)
		assert.Equal(t, 1, result.Ended)

		got, err := f.set.Events.GetEventByID(ctx, q, stopped.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.EventEnded, got.Status)

		live, err = f.set.Events.ListLive(ctx, q, nil)
		require.NoError(t, err)
		require.Len(t, live, 1, "the cached live list must be invalidated by the sync")
		assert.Equal(t, running.ID, live[0].ID)
	})

	t.Run("check_failure_leaves_event_live", func(t *testing.T) {
		f := newSyncFixture(t)
		event := f.liveEvent(t, "Flaky Show")
		f.server.Err = errors.New("bbb unreachable")

		result, err := f.processor.Sync(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, result.Ended)

		f.server.Err = nil
		got, err := f.db.Events().FindByID(ctx, q, event.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.EventLive, got.Status)
	})

	t.Run("no_live_events", func(t *testing.T) {
		f := newSyncFixture(t)

		require.NoError(t, f.processor.ProcessSync(ctx, workers.NewMeetingsSyncTask()))
		assert.Equal(t, 0, f.server.Calls("isMeetingRunning"))
	})
}

func TestMeetingSyncProcessor_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := mocks.NewMockEventRepository(ctrl)
	server := helpers.NewFakeBBB()
	q := helpers.NewNopDB()

	events.EXPECT().
		List(gomock.Any(), q, domain.EventFilter{Status: domain.EventLive}).
		Return(nil, errors.New("connection reset"))

	processor := workers.NewMeetingSyncProcessor(events, server, nil, q, helpers.TestLogger())
	err := processor.ProcessSync(context.Background(), workers.NewMeetingsSyncTask())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.Equal(t, 0, server.Calls("isMeetingRunning"))
}
