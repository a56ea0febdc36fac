package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	redis_a "github.com/ammerola/spoutbreeze-be/internal/adapters/redis_adapter"
	"github.com/ammerola/spoutbreeze-be/internal/core/cache"
	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
	"github.com/ammerola/spoutbreeze-be/internal/core/services"
	"github.com/ammerola/spoutbreeze-be/internal/handlers"
	"github.com/ammerola/spoutbreeze-be/internal/handlers/middleware"
	"github.com/ammerola/spoutbreeze-be/test/helpers"
)

type CacheE2ESuite struct {
	suite.Suite
	disableCache bool

	server  *httptest.Server
	client  *http.Client
	baseURL string
	db      *helpers.MemoryDB
	bbb     *helpers.FakeBBB
	redis   *miniredis.Miniredis
	user    *domain.User
}

func (s *CacheE2ESuite) SetupTest() {
	logger := helpers.TestLogger()
	s.db = helpers.NewMemoryDB()
	s.bbb = helpers.NewFakeBBB()

	var store ports.CacheStore
	if s.disableCache {
		store = redis_a.NewStore(redis_a.StoreConfig{}, logger)
	} else {
		var rs *redis_a.Store
		rs, s.redis = helpers.NewTestStore(s.T())
		store = rs
	}

	set := services.NewSet(services.Deps{
		Users:       s.db.Users(),
		Channels:    s.db.Channels(),
		Events:      s.db.Events(),
		Endpoints:   s.db.Endpoints(),
		Meetings:    s.db.Meetings(),
		BBB:         s.bbb,
		ReadThrough: cache.NewReadThrough(store, logger),
		Invalidator: cache.NewInvalidator(store, nil, logger),
		TTLs:        cache.DefaultTTLs(),
		Event: services.EventConfig{
			MeetingEndedURL: "http://api.test/api/bbb/callback/meeting-ended",
			Welcome:         "Welcome",
		},
		Logger: logger,
	})

	q := helpers.NewNopDB()
	mux := http.NewServeMux()
	handlers.RegisterRoutes(mux, handlers.Handlers{
		Users:      handlers.NewUserHandler(set.Users, q, logger),
		Channels:   handlers.NewChannelHandler(set.Channels, q, logger),
		Events:     handlers.NewEventHandler(set.Events, q, logger),
		Rtmp:       handlers.NewRtmpHandler(set.Rtmp, q, logger),
		BBB:        handlers.NewBBBHandler(set.BBB, q, logger),
		CacheAdmin: handlers.NewCacheAdminHandler(set.Users, set.Users, q, logger),
	})

	s.server = httptest.NewServer(middleware.Chain(mux,
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Principal(middleware.HeaderPrincipal),
	))
	s.client = &http.Client{Timeout: 10 * time.Second}
	s.baseURL = s.server.URL + "/api"
	s.user = helpers.SeedUser(s.T(), q, s.db.Users(), func(u *domain.User) {
		u.Roles = domain.RoleStreamer
	})
}

func (s *CacheE2ESuite) TearDownTest() {
	s.server.Close()
}

func (s *CacheE2ESuite) TestEventLifecycle() {
	event := s.createEvent("Lifecycle Show")
	s.Equal(domain.EventScheduled, event.Status)

	s.Contains(s.eventIDs("/events/upcoming"), event.ID)
	s.Empty(s.eventIDs("/events/live"))

	resp := s.makeRequest(http.MethodPost, fmt.Sprintf("/events/%s/start", event.ID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	s.NotContains(s.eventIDs("/events/upcoming"), event.ID)
	s.Contains(s.eventIDs("/events/live"), event.ID)

	resp = s.makeRequest(http.MethodPost, fmt.Sprintf("/events/%s/end", event.ID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	var ended domain.Event
	s.decodeResponse(resp, &ended)
	s.Equal(domain.EventEnded, ended.Status)

	s.NotContains(s.eventIDs("/events/live"), event.ID)
	s.Contains(s.eventIDs("/events/past"), event.ID)
}

func (s *CacheE2ESuite) TestRtmpEndpointCreateThenList() {
	first := s.createEndpoint("YouTube")
	listPath := fmt.Sprintf("/stream-endpoints/user/%s", s.user.ID)

	s.db.ResetCalls()
	s.Equal([]uuid.UUID{first.ID}, s.endpointIDs(listPath))
	s.Equal([]uuid.UUID{first.ID}, s.endpointIDs(listPath))
	if s.disableCache {
		s.Equal(2, s.db.Calls("endpoints.ListByUser"))
	} else {
		s.Equal(1, s.db.Calls("endpoints.ListByUser"), "second listing must be served from cache")
	}

	second := s.createEndpoint("Twitch")
	s.ElementsMatch([]uuid.UUID{first.ID, second.ID}, s.endpointIDs(listPath))
}

func (s *CacheE2ESuite) TestMeetingEndedCrossInvalidation() {
	event := s.createEvent("Callback Show")

	var fetched domain.Event
	s.decodeResponse(s.makeRequest(http.MethodGet, fmt.Sprintf("/events/%s", event.ID), nil), &fetched)
	s.False(fetched.MeetingCreated)

	resp := s.makeRequest(http.MethodPost, fmt.Sprintf("/events/%s/start", event.ID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	runningPath := fmt.Sprintf("/bbb/meetings/%s/running", event.MeetingID)
	var status domain.MeetingStatus
	s.decodeResponse(s.makeRequest(http.MethodGet, runningPath, nil), &status)
	s.True(status.Running)

	s.bbb.Stop(event.MeetingID)
	resp = s.makeRequest(http.MethodPost, "/bbb/callback/meeting-ended",
		domain.MeetingEnded{MeetingID: event.MeetingID, EventID: &event.ID})
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	s.decodeResponse(s.makeRequest(http.MethodGet, fmt.Sprintf("/events/%s", event.ID), nil), &fetched)
	s.Equal(domain.EventEnded, fetched.Status)

	checks := s.bbb.Calls("isMeetingRunning")
	s.decodeResponse(s.makeRequest(http.MethodGet, runningPath, nil), &status)
	s.False(status.Running)
	s.Equal(checks+1, s.bbb.Calls("isMeetingRunning"), "running state must be recomputed after the meeting ended")
}

func (s *CacheE2ESuite) TestAdminInvalidatesUserCache() {
	if s.disableCache {
		s.T().Skip("nothing cached")
	}
	admin := helpers.SeedUser(s.T(), helpers.NewNopDB(), s.db.Users(), func(u *domain.User) {
		u.Roles = domain.RoleAdmin
	})

	resp := s.makeRequest(http.MethodGet, fmt.Sprintf("/users/%s", s.user.ID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	s.NotEmpty(s.redis.Keys())

	resp = s.makeRequestAs(admin.ID, http.MethodPost, fmt.Sprintf("/admin/cache/users/%s/invalidate", s.user.ID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	var result handlers.InvalidationResult
	s.decodeResponse(resp, &result)
	s.Empty(result.Failed)

	for _, key := range s.redis.Keys() {
		s.NotContains(key, s.user.ID.String())
	}
}

// Helper methods

func (s *CacheE2ESuite) createEvent(title string) domain.Event {
	resp := s.makeRequest(http.MethodPost, "/events", domain.EventCreate{
		Title:       title,
		StartTime:   time.Now().UTC().Add(time.Hour),
		ChannelName: "e2e-studio",
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var event domain.Event
	s.decodeResponse(resp, &event)
	return event
}

func (s *CacheE2ESuite) createEndpoint(title string) domain.RtmpEndpoint {
	resp := s.makeRequest(http.MethodPost, "/stream-endpoints", domain.RtmpEndpointInput{
		Title:     title,
		StreamKey: "sk-" + uuid.NewString(),
		RtmpURL:   "rtmp://live.example.com/app",
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var endpoint domain.RtmpEndpoint
	s.decodeResponse(resp, &endpoint)
	return endpoint
}

func (s *CacheE2ESuite) eventIDs(path string) []uuid.UUID {
	resp := s.makeRequest(http.MethodGet, path, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var events []domain.Event
	s.decodeResponse(resp, &events)
	ids := make([]uuid.UUID, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	return ids
}

func (s *CacheE2ESuite) endpointIDs(path string) []uuid.UUID {
	resp := s.makeRequest(http.MethodGet, path, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var endpoints []domain.RtmpEndpoint
	s.decodeResponse(resp, &endpoints)
	ids := make([]uuid.UUID, 0, len(endpoints))
	for _, e := range endpoints {
		ids = append(ids, e.ID)
	}
	return ids
}

func (s *CacheE2ESuite) makeRequest(method, path string, body interface{}) *http.Response {
	return s.makeRequestAs(s.user.ID, method, path, body)
}

func (s *CacheE2ESuite) makeRequestAs(userID uuid.UUID, method, path string, body interface{}) *http.Response {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		s.Require().NoError(err)
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reqBody)
	s.Require().NoError(err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-User-ID", userID.String())

	resp, err := s.client.Do(req)
	s.Require().NoError(err)

	return resp
}

func (s *CacheE2ESuite) decodeResponse(resp *http.Response, v interface{}) {
	defer resp.Body.Close()
	err := json.NewDecoder(resp.Body).Decode(v)
	s.Require().NoError(err)
}

func TestCacheE2ESuite(t *testing.T) {
	suite.Run(t, new(CacheE2ESuite))
}

func TestCacheDisabledE2ESuite(t *testing.T) {
	suite.Run(t, &CacheE2ESuite{disableCache: true})
}
