package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/internal/handlers"
	"github.com/ammerola/spoutbreeze-be/test/helpers"
)

func TestEventHandler_Lists(t *testing.T) {
	creator := uuid.New()
	event := helpers.CreateTestEvent(creator, uuid.New())

	tests := []struct {
		name       string
		path       string
		caller     *uuid.UUID
		setupMocks func(*testAPI)
	}{
		{
			name: "all_events",
			path: "/api/events/all",
			setupMocks: func(a *testAPI) {
				a.events.EXPECT().ListEvents(gomock.Any(), gomock.Any()).Return([]*domain.Event{event}, nil)
			},
		},
		{
			name:   "all_events_by_status_for_caller",
			path:   "/api/events/all?status=scheduled",
			caller: &creator,
			setupMocks: func(a *testAPI) {
				a.events.EXPECT().
					ListEventsByStatus(gomock.Any(), gomock.Any(), domain.EventScheduled, &creator).
					Return([]*domain.Event{event}, nil)
			},
		},
		{
			name: "upcoming_anonymous",
			path: "/api/events/upcoming",
			setupMocks: func(a *testAPI) {
				a.events.EXPECT().ListUpcoming(gomock.Any(), gomock.Any(), (*uuid.UUID)(nil)).Return([]*domain.Event{event}, nil)
			},
		},
		{
			name:   "past_for_caller",
			path:   "/api/events/past",
			caller: &creator,
			setupMocks: func(a *testAPI) {
				a.events.EXPECT().ListPast(gomock.Any(), gomock.Any(), &creator).Return([]*domain.Event{event}, nil)
			},
		},
		{
			name: "live",
			path: "/api/events/live",
			setupMocks: func(a *testAPI) {
				a.events.EXPECT().ListLive(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*domain.Event{event}, nil)
			},
		},
		{
			name: "by_channel",
			path: "/api/events/channel/" + event.ChannelID.String(),
			setupMocks: func(a *testAPI) {
				a.events.EXPECT().ListEventsByChannel(gomock.Any(), gomock.Any(), event.ChannelID).Return([]*domain.Event{event}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			tt.setupMocks(api)

			w := api.do(t, http.MethodGet, tt.path, nil, tt.caller)

			assert.Equal(t, http.StatusOK, w.Code)
			list := decodeBody[handlers.EventList](t, w)
			assert.Equal(t, 1, list.Total)
			assert.Equal(t, event.ID, list.Events[0].ID)
			assert.NotContains(t, w.Body.String(), "moderator_pw")
			assert.NotContains(t, w.Body.String(), "attendee_pw")
		})
	}
}

func TestEventHandler_GetEventHidesPasswords(t *testing.T) {
	event := helpers.CreateTestEvent(uuid.New(), uuid.New())
	require.NotEmpty(t, event.ModeratorPW)

	api := newTestAPI(t)
	api.events.EXPECT().GetEventByID(gomock.Any(), gomock.Any(), event.ID).Return(event, nil)

	w := api.do(t, http.MethodGet, "/api/events/"+event.ID.String(), nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), event.ModeratorPW)
	assert.NotContains(t, w.Body.String(), event.AttendeePW)
	assert.NotEmpty(t, event.ModeratorPW, "the service's value is left untouched")
}

func TestEventHandler_ListAll_InvalidStatus(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodGet, "/api/events/all?status=paused", nil, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEventHandler_EmptyListIsArray(t *testing.T) {
	api := newTestAPI(t)
	api.events.EXPECT().ListLive(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	w := api.do(t, http.MethodGet, "/api/events/live", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"events":[],"total":0}`, w.Body.String())
}

func TestEventHandler_Transitions(t *testing.T) {
	creator := uuid.New()
	event := helpers.CreateTestEvent(creator, uuid.New())
	links := &domain.JoinLinks{EventID: event.ID, MeetingID: event.MeetingID, AttendeeURL: "a", ModeratorURL: "m"}

	tests := []struct {
		name           string
		action         string
		setupMocks     func(*testAPI)
		expectedStatus int
	}{
		{
			name:   "start",
			action: "start",
			setupMocks: func(a *testAPI) {
				a.events.EXPECT().StartEvent(gomock.Any(), gomock.Any(), event.ID, creator).Return(links, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "start_twice_conflicts",
			action: "start",
			setupMocks: func(a *testAPI) {
				a.events.EXPECT().StartEvent(gomock.Any(), gomock.Any(), event.ID, creator).
					Return(nil, fmt.Errorf("%w: event is live", domain.ErrInvalidTransition))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "start_bbb_failure",
			action: "start",
			setupMocks: func(a *testAPI) {
				a.events.EXPECT().StartEvent(gomock.Any(), gomock.Any(), event.ID, creator).
					Return(nil, &domain.APIError{ReturnCode: "FAILED", MessageKey: "checksumError", Message: "bad checksum"})
			},
			expectedStatus: http.StatusBadGateway,
		},
		{
			name:   "end",
			action: "end",
			setupMocks: func(a *testAPI) {
				a.events.EXPECT().EndEvent(gomock.Any(), gomock.Any(), event.ID, creator).Return(event, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "cancel_by_non_organizer",
			action: "cancel",
			setupMocks: func(a *testAPI) {
				a.events.EXPECT().CancelEvent(gomock.Any(), gomock.Any(), event.ID, creator).Return(nil, domain.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			tt.setupMocks(api)

			w := api.do(t, http.MethodPost, "/api/events/"+event.ID.String()+"/"+tt.action, nil, &creator)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestEventHandler_JoinEvent(t *testing.T) {
	eventID := uuid.New()
	caller := uuid.New()
	links := &domain.JoinLinks{EventID: eventID, MeetingID: "m", AttendeeURL: "https://bbb.test/join"}

	t.Run("anonymous_with_name", func(t *testing.T) {
		api := newTestAPI(t)
		api.events.EXPECT().JoinEvent(gomock.Any(), gomock.Any(), eventID, uuid.Nil, "Guest").Return(links, nil)

		w := api.do(t, http.MethodPost, "/api/events/"+eventID.String()+"/join", handlers.JoinRequest{FullName: "Guest"}, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, links.AttendeeURL, decodeBody[domain.JoinLinks](t, w).AttendeeURL)
	})

	t.Run("anonymous_without_name", func(t *testing.T) {
		api := newTestAPI(t)

		w := api.do(t, http.MethodPost, "/api/events/"+eventID.String()+"/join", nil, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("authenticated_without_body", func(t *testing.T) {
		api := newTestAPI(t)
		api.events.EXPECT().JoinEvent(gomock.Any(), gomock.Any(), eventID, caller, "").Return(links, nil)

		w := api.do(t, http.MethodPost, "/api/events/"+eventID.String()+"/join", nil, &caller)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("event_not_live", func(t *testing.T) {
		api := newTestAPI(t)
		api.events.EXPECT().JoinEvent(gomock.Any(), gomock.Any(), eventID, caller, "").
			Return(nil, fmt.Errorf("%w: event is scheduled", domain.ErrInvalidTransition))

		w := api.do(t, http.MethodPost, "/api/events/"+eventID.String()+"/join", nil, &caller)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestEventHandler_CreateUpdateDelete(t *testing.T) {
	creator := uuid.New()
	event := helpers.CreateTestEvent(creator, uuid.New())

	t.Run("create", func(t *testing.T) {
		api := newTestAPI(t)
		input := domain.EventCreate{Title: event.Title, Occurs: domain.OccursOnce, StartTime: event.StartTime, ChannelName: "main"}
		api.events.EXPECT().CreateEvent(gomock.Any(), gomock.Any(), gomock.Any(), creator).Return(event, nil)

		w := api.do(t, http.MethodPost, "/api/events", input, &creator)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, event.ID, decodeBody[domain.Event](t, w).ID)
	})

	t.Run("create_invalid", func(t *testing.T) {
		api := newTestAPI(t)
		api.events.EXPECT().CreateEvent(gomock.Any(), gomock.Any(), gomock.Any(), creator).
			Return(nil, domain.Invalid("title", "is required"))

		w := api.do(t, http.MethodPost, "/api/events", domain.EventCreate{}, &creator)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "title", decodeBody[map[string]string](t, w)["field"])
	})

	t.Run("update", func(t *testing.T) {
		api := newTestAPI(t)
		update := domain.EventUpdate{Title: ptr("Renamed")}
		api.events.EXPECT().UpdateEvent(gomock.Any(), gomock.Any(), event.ID, update, creator).Return(event, nil)

		w := api.do(t, http.MethodPut, "/api/events/"+event.ID.String(), update, &creator)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		api := newTestAPI(t)
		api.events.EXPECT().DeleteEvent(gomock.Any(), gomock.Any(), event.ID, creator).Return(nil)

		w := api.do(t, http.MethodDelete, "/api/events/"+event.ID.String(), nil, &creator)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, event.ID.String(), decodeBody[map[string]string](t, w)["event_id"])
	})
}
