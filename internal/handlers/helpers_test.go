package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/spoutbreeze-be/internal/handlers"
	"github.com/ammerola/spoutbreeze-be/internal/handlers/middleware"
	"github.com/ammerola/spoutbreeze-be/test/helpers"
	"github.com/ammerola/spoutbreeze-be/test/mocks"
)

type fakeInvalidator struct {
	mu     sync.Mutex
	calls  []string
	failed []string
}

func (f *fakeInvalidator) InvalidateUser(ctx context.Context, id uuid.UUID, keycloakID string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, id.String()+"|"+keycloakID)
	return f.failed
}

type testAPI struct {
	users       *mocks.MockUserService
	channels    *mocks.MockChannelService
	events      *mocks.MockEventService
	rtmp        *mocks.MockRtmpService
	bbb         *mocks.MockBBBService
	invalidator *fakeInvalidator
	handler     http.Handler
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	ctrl := gomock.NewController(t)
	api := &testAPI{
		users:       mocks.NewMockUserService(ctrl),
		channels:    mocks.NewMockChannelService(ctrl),
		events:      mocks.NewMockEventService(ctrl),
		rtmp:        mocks.NewMockRtmpService(ctrl),
		bbb:         mocks.NewMockBBBService(ctrl),
		invalidator: &fakeInvalidator{},
	}

	db := helpers.NewNopDB()
	logger := helpers.TestLogger()

	mux := http.NewServeMux()
	handlers.RegisterRoutes(mux, handlers.Handlers{
		Users:      handlers.NewUserHandler(api.users, db, logger),
		Channels:   handlers.NewChannelHandler(api.channels, db, logger),
		Events:     handlers.NewEventHandler(api.events, db, logger),
		Rtmp:       handlers.NewRtmpHandler(api.rtmp, db, logger),
		BBB:        handlers.NewBBBHandler(api.bbb, db, logger),
		CacheAdmin: handlers.NewCacheAdminHandler(api.users, api.invalidator, db, logger),
	})
	api.handler = middleware.Principal(middleware.HeaderPrincipal)(mux)

	return api
}

// do sends a request through the router. user may be nil for anonymous calls.
func (a *testAPI) do(t *testing.T, method, path string, body interface{}, user *uuid.UUID) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if user != nil {
		req.Header.Set("X-User-ID", user.String())
	}

	w := httptest.NewRecorder()
	a.handler.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func ptr[T any](v T) *T { return &v }
