package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/spoutbreeze-be/internal/core/cache"
	"github.com/ammerola/spoutbreeze-be/internal/handlers"
	"github.com/ammerola/spoutbreeze-be/test/helpers"
)

func TestCacheTTLs(t *testing.T) {
	cfg := helpers.LoadTestConfig(t, map[string]string{
		"CACHE_TTL_SHORT":       "10",
		"CACHE_TTL_BBB_RUNNING": "5",
	})

	ttls := cacheTTLs(cfg)

	defaults := cache.DefaultTTLs()
	assert.Equal(t, 10*time.Second, ttls.Short)
	assert.Equal(t, 5*time.Second, ttls.BBBRunning)
	assert.Equal(t, defaults.BBB, ttls.BBB)
	assert.Equal(t, defaults.Medium, ttls.Medium)
	assert.Equal(t, defaults.Long, ttls.Long)
}

func TestAsynqRedisOpt(t *testing.T) {
	cfg := helpers.LoadTestConfig(t, map[string]string{
		"REDIS_URL": "redis://:hunter2@cache.internal:6380/3",
	})

	opts, err := cfg.RedisOptions()
	require.NoError(t, err)

	got := asynqRedisOpt(opts)
	assert.Equal(t, "cache.internal:6380", got.Addr)
	assert.Equal(t, "hunter2", got.Password)
	assert.Equal(t, 3, got.DB)
}

func TestSetupHTTPServer(t *testing.T) {
	cfg := helpers.LoadTestConfig(t, nil)
	deps := &dependencies{handlers: handlers.Handlers{
		Users:    &handlers.UserHandler{},
		Channels: &handlers.ChannelHandler{},
		Events:   &handlers.EventHandler{},
		Rtmp:     &handlers.RtmpHandler{},
		BBB:      &handlers.BBBHandler{},
	}}

	server := setupHTTPServer(cfg, deps, helpers.TestLogger())
	assert.Equal(t, cfg.GetServerAddress(), server.Addr)

	t.Run("malformed_principal_is_rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		req.Header.Set("X-User-ID", "not-a-uuid")
		w := httptest.NewRecorder()

		server.Handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	})

	t.Run("unknown_route", func(t *testing.T) {
		w := httptest.NewRecorder()
		server.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
