// internal/handlers/routes.go
package handlers

import "net/http"

// Handlers groups every resource handler mounted on the API mux. A nil
// Health or CacheAdmin leaves those routes unregistered.
type Handlers struct {
	Health     *HealthHandler
	Users      *UserHandler
	Channels   *ChannelHandler
	Events     *EventHandler
	Rtmp       *RtmpHandler
	BBB        *BBBHandler
	CacheAdmin *CacheAdminHandler
}

// RegisterRoutes mounts the API using Go 1.22 method-specific patterns
func RegisterRoutes(mux *http.ServeMux, h Handlers) {
	if h.Health != nil {
		mux.HandleFunc("GET /health", h.Health.Health)
		mux.HandleFunc("GET /health/ready", h.Health.Ready)
		mux.HandleFunc("GET /health/live", h.Health.Live)
		mux.HandleFunc("GET /health/cache", h.Health.Cache)
	}

	if h.CacheAdmin != nil {
		mux.HandleFunc("POST /api/admin/cache/users/{id}/invalidate", h.CacheAdmin.InvalidateUser)
	}

	// Users
	mux.HandleFunc("GET /api/users", h.Users.ListUsers)
	mux.HandleFunc("GET /api/users/me", h.Users.Me)
	mux.HandleFunc("GET /api/users/{id}", h.Users.GetUser)
	mux.HandleFunc("GET /api/users/{id}/roles", h.Users.GetUserRoles)
	mux.HandleFunc("GET /api/users/{userId}/channels", h.Channels.ListChannelsByUser)
	mux.HandleFunc("PUT /api/users/{id}", h.Users.UpdateProfile)
	mux.HandleFunc("PUT /api/users/{id}/role", h.Users.UpdateRole)

	// Channels
	mux.HandleFunc("GET /api/channels", h.Channels.ListChannels)
	mux.HandleFunc("GET /api/channels/{id}", h.Channels.GetChannel)
	mux.HandleFunc("GET /api/channels/{id}/recordings", h.Channels.GetChannelRecordings)
	mux.HandleFunc("POST /api/channels", h.Channels.CreateChannel)
	mux.HandleFunc("PUT /api/channels/{id}", h.Channels.UpdateChannel)
	mux.HandleFunc("DELETE /api/channels/{id}", h.Channels.DeleteChannel)

	// Events
	mux.HandleFunc("GET /api/events/all", h.Events.ListAll)
	mux.HandleFunc("GET /api/events/upcoming", h.Events.ListUpcoming)
	mux.HandleFunc("GET /api/events/past", h.Events.ListPast)
	mux.HandleFunc("GET /api/events/live", h.Events.ListLive)
	mux.HandleFunc("GET /api/events/channel/{channelId}", h.Events.ListByChannel)
	mux.HandleFunc("GET /api/events/{id}", h.Events.GetEvent)
	mux.HandleFunc("POST /api/events", h.Events.CreateEvent)
	mux.HandleFunc("POST /api/events/{id}/start", h.Events.StartEvent)
	mux.HandleFunc("POST /api/events/{id}/end", h.Events.EndEvent)
	mux.HandleFunc("POST /api/events/{id}/cancel", h.Events.CancelEvent)
	mux.HandleFunc("POST /api/events/{id}/join", h.Events.JoinEvent)
	mux.HandleFunc("PUT /api/events/{id}", h.Events.UpdateEvent)
	mux.HandleFunc("DELETE /api/events/{id}", h.Events.DeleteEvent)

	// Stream endpoints
	mux.HandleFunc("GET /api/stream-endpoints", h.Rtmp.ListEndpoints)
	mux.HandleFunc("GET /api/stream-endpoints/user/{userId}", h.Rtmp.ListEndpointsByUser)
	mux.HandleFunc("GET /api/stream-endpoints/{id}", h.Rtmp.GetEndpoint)
	mux.HandleFunc("POST /api/stream-endpoints", h.Rtmp.CreateEndpoint)
	mux.HandleFunc("PUT /api/stream-endpoints/{id}", h.Rtmp.UpdateEndpoint)
	mux.HandleFunc("DELETE /api/stream-endpoints/{id}", h.Rtmp.DeleteEndpoint)

	// BigBlueButton
	mux.HandleFunc("GET /api/bbb/meetings", h.BBB.GetMeetings)
	mux.HandleFunc("GET /api/bbb/meetings/{meetingId}/running", h.BBB.IsMeetingRunning)
	mux.HandleFunc("GET /api/bbb/meetings/{meetingId}/info", h.BBB.GetMeetingInfo)
	mux.HandleFunc("GET /api/bbb/recordings", h.BBB.GetRecordings)
	mux.HandleFunc("POST /api/bbb/callback/meeting-ended", h.BBB.MeetingEnded)
}
