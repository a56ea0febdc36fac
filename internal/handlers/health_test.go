package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redis_a "github.com/ammerola/spoutbreeze-be/internal/adapters/redis_adapter"
	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
	"github.com/ammerola/spoutbreeze-be/internal/handlers"
	"github.com/ammerola/spoutbreeze-be/test/helpers"
)

type fakeDatabase struct {
	err error
}

func (f fakeDatabase) Ping(ctx context.Context) error { return f.err }

func (f fakeDatabase) Health(ctx context.Context) map[string]interface{} {
	return map[string]interface{}{"total_conns": 1}
}

func TestHealthHandler_Health(t *testing.T) {
	tests := []struct {
		name           string
		dbErr          error
		cacheDown      bool
		expectedStatus int
		expectedHealth string
	}{
		{
			name:           "all_healthy",
			expectedStatus: http.StatusOK,
			expectedHealth: "healthy",
		},
		{
			name:           "cache_down_degrades",
			cacheDown:      true,
			expectedStatus: http.StatusOK,
			expectedHealth: "degraded",
		},
		{
			name:           "database_down_is_unhealthy",
			dbErr:          errors.New("connection refused"),
			expectedStatus: http.StatusServiceUnavailable,
			expectedHealth: "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mr := helpers.NewTestStore(t)
			if tt.cacheDown {
				mr.Close()
			}

			h := handlers.NewHealthHandler(fakeDatabase{err: tt.dbErr}, store, nil,
				handlers.HealthInfo{Version: "test", Environment: "test"}, helpers.TestLogger())

			w := httptest.NewRecorder()
			h.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			body := decodeBody[handlers.HealthStatus](t, w)
			assert.Equal(t, tt.expectedHealth, body.Status)
			assert.Equal(t, "test", body.Version)
			assert.Contains(t, body.Services, "database")
			assert.Contains(t, body.Services, "cache")
		})
	}
}

func TestHealthHandler_Cache(t *testing.T) {
	t.Run("healthy_store", func(t *testing.T) {
		store, _ := helpers.NewTestStore(t)
		h := handlers.NewHealthHandler(fakeDatabase{}, store, nil, handlers.HealthInfo{}, helpers.TestLogger())

		w := httptest.NewRecorder()
		h.Cache(w, httptest.NewRequest(http.MethodGet, "/health/cache", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		info := decodeBody[handlers.ServiceInfo](t, w)
		assert.Equal(t, true, info.Details["enabled"])
	})

	t.Run("disabled_store", func(t *testing.T) {
		var store ports.CacheStore = redis_a.NewStore(redis_a.StoreConfig{}, helpers.TestLogger())
		h := handlers.NewHealthHandler(fakeDatabase{}, store, nil, handlers.HealthInfo{}, helpers.TestLogger())

		w := httptest.NewRecorder()
		h.Cache(w, httptest.NewRequest(http.MethodGet, "/health/cache", nil))

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "cache disabled", decodeBody[handlers.ServiceInfo](t, w).Message)
	})
}

func TestHealthHandler_ReadyAndLive(t *testing.T) {
	store, mr := helpers.NewTestStore(t)
	mr.Close()

	t.Run("ready_without_cache", func(t *testing.T) {
		h := handlers.NewHealthHandler(fakeDatabase{}, store, nil, handlers.HealthInfo{}, helpers.TestLogger())

		w := httptest.NewRecorder()
		h.Ready(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ready":true,"services":{"database":true,"cache":false}}`, w.Body.String())
	})

	t.Run("not_ready_without_database", func(t *testing.T) {
		h := handlers.NewHealthHandler(fakeDatabase{err: errors.New("down")}, store, nil, handlers.HealthInfo{}, helpers.TestLogger())

		w := httptest.NewRecorder()
		h.Ready(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("live", func(t *testing.T) {
		h := handlers.NewHealthHandler(fakeDatabase{}, store, nil, handlers.HealthInfo{}, helpers.TestLogger())

		w := httptest.NewRecorder()
		h.Live(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
