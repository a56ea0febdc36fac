package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/test/helpers"
)

func TestUserHandler_GetUser(t *testing.T) {
	user := helpers.CreateTestUser()

	tests := []struct {
		name           string
		path           string
		setupMocks     func(*testAPI)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "successfully_retrieves_user",
			path: "/api/users/" + user.ID.String(),
			setupMocks: func(a *testAPI) {
				a.users.EXPECT().GetUserByID(gomock.Any(), gomock.Any(), user.ID).Return(user, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid_uuid_format",
			path:           "/api/users/not-a-uuid",
			setupMocks:     func(a *testAPI) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid id format",
		},
		{
			name: "user_not_found",
			path: "/api/users/" + user.ID.String(),
			setupMocks: func(a *testAPI) {
				a.users.EXPECT().GetUserByID(gomock.Any(), gomock.Any(), user.ID).Return(nil, domain.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "Not found",
		},
		{
			name: "service_error",
			path: "/api/users/" + user.ID.String(),
			setupMocks: func(a *testAPI) {
				a.users.EXPECT().GetUserByID(gomock.Any(), gomock.Any(), user.ID).Return(nil, errors.New("database connection failed"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			tt.setupMocks(api)

			w := api.do(t, http.MethodGet, tt.path, nil, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				body := decodeBody[map[string]string](t, w)
				assert.Equal(t, tt.expectedError, body["error"])
			} else {
				got := decodeBody[domain.User](t, w)
				assert.Equal(t, user.ID, got.ID)
				assert.Equal(t, user.Username, got.Username)
			}
		})
	}
}

func TestUserHandler_Me(t *testing.T) {
	t.Run("requires_principal", func(t *testing.T) {
		api := newTestAPI(t)

		w := api.do(t, http.MethodGet, "/api/users/me", nil, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("returns_caller", func(t *testing.T) {
		api := newTestAPI(t)
		user := helpers.CreateTestUser()
		api.users.EXPECT().GetUserByID(gomock.Any(), gomock.Any(), user.ID).Return(user, nil)

		w := api.do(t, http.MethodGet, "/api/users/me", nil, &user.ID)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, user.ID, decodeBody[domain.User](t, w).ID)
	})
}

func TestUserHandler_ListUsers(t *testing.T) {
	api := newTestAPI(t)
	caller := uuid.New()
	users := []*domain.User{helpers.CreateTestUser(), helpers.CreateTestUser()}

	api.users.EXPECT().ListUsers(gomock.Any(), gomock.Any(), 10, 5).Return(users, nil)

	w := api.do(t, http.MethodGet, "/api/users?skip=10&limit=5", nil, &caller)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody[[]domain.User](t, w), 2)
}

func TestUserHandler_GetUserRoles(t *testing.T) {
	api := newTestAPI(t)
	id := uuid.New()

	api.users.EXPECT().GetUserRoles(gomock.Any(), gomock.Any(), id).Return([]string{domain.RoleViewer, domain.RoleStreamer}, nil)

	w := api.do(t, http.MethodGet, "/api/users/"+id.String()+"/roles", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody[map[string]interface{}](t, w)
	assert.Equal(t, id.String(), body["user_id"])
	assert.ElementsMatch(t, []interface{}{"viewer", "streamer"}, body["roles"])
}

func TestUserHandler_UpdateProfile(t *testing.T) {
	owner := helpers.CreateTestUser()
	other := uuid.New()
	update := domain.UserUpdate{FirstName: ptr("Grace")}

	tests := []struct {
		name           string
		caller         *uuid.UUID
		body           interface{}
		setupMocks     func(*testAPI)
		expectedStatus int
	}{
		{
			name:   "owner_updates_own_profile",
			caller: &owner.ID,
			body:   update,
			setupMocks: func(a *testAPI) {
				a.users.EXPECT().UpdateProfile(gomock.Any(), gomock.Any(), owner.ID, update).Return(owner, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "admin_updates_other_profile",
			caller: &other,
			body:   update,
			setupMocks: func(a *testAPI) {
				a.users.EXPECT().GetUserRoles(gomock.Any(), gomock.Any(), other).Return([]string{domain.RoleAdmin}, nil)
				a.users.EXPECT().UpdateProfile(gomock.Any(), gomock.Any(), owner.ID, update).Return(owner, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "non_admin_cannot_update_other_profile",
			caller: &other,
			body:   update,
			setupMocks: func(a *testAPI) {
				a.users.EXPECT().GetUserRoles(gomock.Any(), gomock.Any(), other).Return([]string{domain.RoleViewer}, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "anonymous_rejected",
			body:           update,
			setupMocks:     func(a *testAPI) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown_field_rejected",
			caller:         &owner.ID,
			body:           map[string]string{"nickname": "x"},
			setupMocks:     func(a *testAPI) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "validation_error_reports_field",
			caller: &owner.ID,
			body:   domain.UserUpdate{Email: ptr("nope")},
			setupMocks: func(a *testAPI) {
				a.users.EXPECT().UpdateProfile(gomock.Any(), gomock.Any(), owner.ID, gomock.Any()).
					Return(nil, domain.Invalid("email", "is invalid"))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			tt.setupMocks(api)

			w := api.do(t, http.MethodPut, "/api/users/"+owner.ID.String(), tt.body, tt.caller)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestUserHandler_UpdateRole(t *testing.T) {
	admin := uuid.New()
	target := helpers.CreateTestUser()

	t.Run("admin_changes_role", func(t *testing.T) {
		api := newTestAPI(t)
		api.users.EXPECT().GetUserRoles(gomock.Any(), gomock.Any(), admin).Return([]string{domain.RoleAdmin}, nil)
		api.users.EXPECT().UpdateRole(gomock.Any(), gomock.Any(), target.ID, domain.RoleModerator).Return(target, nil)

		w := api.do(t, http.MethodPut, "/api/users/"+target.ID.String()+"/role",
			map[string]string{"role": domain.RoleModerator}, &admin)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown_caller_is_forbidden", func(t *testing.T) {
		api := newTestAPI(t)
		api.users.EXPECT().GetUserRoles(gomock.Any(), gomock.Any(), admin).Return(nil, domain.ErrNotFound)

		w := api.do(t, http.MethodPut, "/api/users/"+target.ID.String()+"/role",
			map[string]string{"role": domain.RoleModerator}, &admin)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
