package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
)

func TestEvent_Validate(t *testing.T) {
	creator := uuid.New()
	start := time.Date(2026, 1, 10, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		event     *domain.Event
		wantError bool
		errorMsg  string
	}{
		{
			name: "valid_event_sets_defaults",
			event: &domain.Event{
				Title:     "  Weekly Sync ",
				CreatorID: creator,
				StartTime: start,
			},
		},
		{
			name:      "missing_title",
			event:     &domain.Event{CreatorID: creator, StartTime: start},
			wantError: true,
			errorMsg:  "title is required",
		},
		{
			name:      "missing_creator",
			event:     &domain.Event{Title: "Sync", StartTime: start},
			wantError: true,
			errorMsg:  "creator_id is required",
		},
		{
			name:      "missing_start_time",
			event:     &domain.Event{Title: "Sync", CreatorID: creator},
			wantError: true,
			errorMsg:  "start_time is required",
		},
		{
			name: "end_before_start",
			event: &domain.Event{
				Title:     "Sync",
				CreatorID: creator,
				StartTime: start,
				StartDate: start,
				EndDate:   start.Add(-24 * time.Hour),
			},
			wantError: true,
			errorMsg:  "end_date must not be before start_date",
		},
		{
			name: "unknown_occurrence",
			event: &domain.Event{
				Title:     "Sync",
				CreatorID: creator,
				StartTime: start,
				Occurs:    "yearly",
			},
			wantError: true,
			errorMsg:  "occurs must be one of",
		},
		{
			name: "unknown_timezone",
			event: &domain.Event{
				Title:     "Sync",
				CreatorID: creator,
				StartTime: start,
				Timezone:  "Mars/Olympus",
			},
			wantError: true,
			errorMsg:  "timezone is not a known IANA zone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.event.Validate()

			if tt.wantError {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrValidation)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Weekly Sync", tt.event.Title)
			assert.Equal(t, domain.OccursOnce, tt.event.Occurs)
			assert.Equal(t, "UTC", tt.event.Timezone)
			assert.Equal(t, domain.EventScheduled, tt.event.Status)
		})
	}
}

func TestEvent_Transitions(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name       string
		from       domain.EventStatus
		apply      func(*domain.Event) error
		wantStatus domain.EventStatus
		wantError  bool
	}{
		{
			name:       "start_scheduled",
			from:       domain.EventScheduled,
			apply:      func(e *domain.Event) error { return e.Start(now) },
			wantStatus: domain.EventLive,
		},
		{
			name:       "start_live_is_idempotent",
			from:       domain.EventLive,
			apply:      func(e *domain.Event) error { return e.Start(now) },
			wantStatus: domain.EventLive,
		},
		{
			name:      "start_ended",
			from:      domain.EventEnded,
			apply:     func(e *domain.Event) error { return e.Start(now) },
			wantError: true,
		},
		{
			name:      "start_cancelled",
			from:      domain.EventCancelled,
			apply:     func(e *domain.Event) error { return e.Start(now) },
			wantError: true,
		},
		{
			name:       "end_live",
			from:       domain.EventLive,
			apply:      func(e *domain.Event) error { return e.End(now) },
			wantStatus: domain.EventEnded,
		},
		{
			name:      "end_scheduled",
			from:      domain.EventScheduled,
			apply:     func(e *domain.Event) error { return e.End(now) },
			wantError: true,
		},
		{
			name:       "cancel_scheduled",
			from:       domain.EventScheduled,
			apply:      func(e *domain.Event) error { return e.Cancel(now) },
			wantStatus: domain.EventCancelled,
		},
		{
			name:      "cancel_live",
			from:      domain.EventLive,
			apply:     func(e *domain.Event) error { return e.Cancel(now) },
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &domain.Event{Status: tt.from}

			err := tt.apply(e)

			if tt.wantError {
				require.ErrorIs(t, err, domain.ErrInvalidTransition)
				assert.Equal(t, tt.from, e.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, e.Status)
		})
	}

	t.Run("start_records_actual_start_time", func(t *testing.T) {
		e := &domain.Event{Status: domain.EventScheduled}
		require.NoError(t, e.Start(now))
		require.NotNil(t, e.ActualStartTime)
		assert.Equal(t, now, *e.ActualStartTime)

		later := now.Add(time.Minute)
		require.NoError(t, e.Start(later))
		assert.Equal(t, now, *e.ActualStartTime)
	})

	t.Run("end_records_actual_end_time", func(t *testing.T) {
		e := &domain.Event{Status: domain.EventLive}
		require.NoError(t, e.End(now))
		require.NotNil(t, e.ActualEndTime)
		assert.Equal(t, now, *e.ActualEndTime)
	})
}

func TestMeetingIDFromTitle(t *testing.T) {
	t.Run("replaces_spaces_and_appends_suffix", func(t *testing.T) {
		id := domain.MeetingIDFromTitle("Team Stand Up")

		require.True(t, strings.HasPrefix(id, "Team_Stand_Up_"))
		assert.Len(t, strings.TrimPrefix(id, "Team_Stand_Up_"), 8)
	})

	t.Run("truncates_long_titles", func(t *testing.T) {
		id := domain.MeetingIDFromTitle(strings.Repeat("a", 80))

		assert.Len(t, id, 32+1+8)
	})

	t.Run("is_unique_per_call", func(t *testing.T) {
		assert.NotEqual(t, domain.MeetingIDFromTitle("Sync"), domain.MeetingIDFromTitle("Sync"))
	})
}

func TestEvent_PrepareForStorage(t *testing.T) {
	e := &domain.Event{Title: "Launch Party", StartTime: time.Now()}

	e.PrepareForStorage()

	assert.NotEqual(t, uuid.Nil, e.ID)
	assert.True(t, strings.HasPrefix(e.MeetingID, "Launch_Party_"))
	assert.NotEmpty(t, e.ModeratorPW)
	assert.NotEmpty(t, e.AttendeePW)
	assert.NotEqual(t, e.ModeratorPW, e.AttendeePW)
	assert.Equal(t, e.StartTime, e.StartDate)
	assert.NotZero(t, e.CreatedAt)
}

func TestEvent_IsOrganizer(t *testing.T) {
	creator, organizer, stranger := uuid.New(), uuid.New(), uuid.New()
	e := &domain.Event{CreatorID: creator, OrganizerIDs: []uuid.UUID{organizer}}

	assert.True(t, e.IsOrganizer(creator))
	assert.True(t, e.IsOrganizer(organizer))
	assert.False(t, e.IsOrganizer(stranger))
}

// Benchmarks
func BenchmarkMeetingIDFromTitle(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = domain.MeetingIDFromTitle("Quarterly Planning Session With Everyone")
	}
}
