package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/spoutbreeze-be/internal/handlers"
)

func TestRegisterRoutes(t *testing.T) {
	mux := http.NewServeMux()
	require.NotPanics(t, func() {
		handlers.RegisterRoutes(mux, handlers.Handlers{
			Health:     &handlers.HealthHandler{},
			Users:      &handlers.UserHandler{},
			Channels:   &handlers.ChannelHandler{},
			Events:     &handlers.EventHandler{},
			Rtmp:       &handlers.RtmpHandler{},
			BBB:        &handlers.BBBHandler{},
			CacheAdmin: &handlers.CacheAdminHandler{},
		})
	})

	tests := []struct {
		name    string
		method  string
		path    string
		pattern string
	}{
		{"cache_health", http.MethodGet, "/health/cache", "GET /health/cache"},
		{"admin_invalidation", http.MethodPost, "/api/admin/cache/users/42/invalidate", "POST /api/admin/cache/users/{id}/invalidate"},
		{"user_channels", http.MethodGet, "/api/users/42/channels", "GET /api/users/{userId}/channels"},
		{"user_roles", http.MethodGet, "/api/users/42/roles", "GET /api/users/{id}/roles"},
		{"channel_named_user", http.MethodGet, "/api/channels/user", "GET /api/channels/{id}"},
		{"channel_recordings", http.MethodGet, "/api/channels/user/recordings", "GET /api/channels/{id}/recordings"},
		{"events_by_channel", http.MethodGet, "/api/events/channel/42", "GET /api/events/channel/{channelId}"},
		{"live_events", http.MethodGet, "/api/events/live", "GET /api/events/live"},
		{"endpoints_by_user", http.MethodGet, "/api/stream-endpoints/user/42", "GET /api/stream-endpoints/user/{userId}"},
		{"meeting_running", http.MethodGet, "/api/bbb/meetings/m-1/running", "GET /api/bbb/meetings/{meetingId}/running"},
		{"meeting_ended_callback", http.MethodPost, "/api/bbb/callback/meeting-ended", "POST /api/bbb/callback/meeting-ended"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, pattern := mux.Handler(httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.pattern, pattern)
		})
	}
}

func TestRegisterRoutes_OptionalHandlers(t *testing.T) {
	mux := http.NewServeMux()
	handlers.RegisterRoutes(mux, handlers.Handlers{
		Users:    &handlers.UserHandler{},
		Channels: &handlers.ChannelHandler{},
		Events:   &handlers.EventHandler{},
		Rtmp:     &handlers.RtmpHandler{},
		BBB:      &handlers.BBBHandler{},
	})

	_, pattern := mux.Handler(httptest.NewRequest(http.MethodGet, "/health/cache", nil))
	assert.Empty(t, pattern)
}
