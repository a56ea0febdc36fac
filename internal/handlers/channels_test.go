package handlers_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/test/helpers"
)

func TestChannelHandler_CreateChannel(t *testing.T) {
	owner := uuid.New()
	channel := helpers.CreateTestChannel(owner)

	tests := []struct {
		name           string
		caller         *uuid.UUID
		setupMocks     func(*testAPI)
		expectedStatus int
		expectedError  string
	}{
		{
			name:   "creates_channel",
			caller: &owner,
			setupMocks: func(a *testAPI) {
				a.channels.EXPECT().
					CreateChannel(gomock.Any(), gomock.Any(), domain.ChannelInput{Name: channel.Name}, owner).
					Return(channel, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "duplicate_name_conflicts",
			caller: &owner,
			setupMocks: func(a *testAPI) {
				a.channels.EXPECT().
					CreateChannel(gomock.Any(), gomock.Any(), gomock.Any(), owner).
					Return(nil, domain.ErrConflict)
			},
			expectedStatus: http.StatusConflict,
			expectedError:  "Already exists",
		},
		{
			name:           "anonymous_rejected",
			setupMocks:     func(a *testAPI) {},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Authentication required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			tt.setupMocks(api)

			w := api.do(t, http.MethodPost, "/api/channels", domain.ChannelInput{Name: channel.Name}, tt.caller)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeBody[map[string]string](t, w)["error"])
			} else {
				assert.Equal(t, channel.ID, decodeBody[domain.Channel](t, w).ID)
			}
		})
	}
}

func TestChannelHandler_Reads(t *testing.T) {
	owner := uuid.New()
	channel := helpers.CreateTestChannel(owner)

	t.Run("lists_channels", func(t *testing.T) {
		api := newTestAPI(t)
		api.channels.EXPECT().ListChannels(gomock.Any(), gomock.Any()).Return([]*domain.Channel{channel}, nil)

		w := api.do(t, http.MethodGet, "/api/channels", nil, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody[[]domain.Channel](t, w), 1)
	})

	t.Run("lists_channels_by_user", func(t *testing.T) {
		api := newTestAPI(t)
		api.channels.EXPECT().ListChannelsByUser(gomock.Any(), gomock.Any(), owner).Return([]*domain.Channel{channel}, nil)

		w := api.do(t, http.MethodGet, "/api/users/"+owner.String()+"/channels", nil, nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("gets_channel", func(t *testing.T) {
		api := newTestAPI(t)
		api.channels.EXPECT().GetChannelByID(gomock.Any(), gomock.Any(), channel.ID).Return(channel, nil)

		w := api.do(t, http.MethodGet, "/api/channels/"+channel.ID.String(), nil, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, channel.Name, decodeBody[domain.Channel](t, w).Name)
	})

	t.Run("recordings_require_principal", func(t *testing.T) {
		api := newTestAPI(t)

		w := api.do(t, http.MethodGet, "/api/channels/"+channel.ID.String()+"/recordings", nil, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("recordings_for_owner", func(t *testing.T) {
		api := newTestAPI(t)
		api.channels.EXPECT().GetChannelRecordings(gomock.Any(), gomock.Any(), channel.ID, owner).
			Return(&domain.ChannelRecordings{ChannelID: channel.ID, Recordings: []domain.Recording{{RecordID: "r1"}}, Total: 1}, nil)

		w := api.do(t, http.MethodGet, "/api/channels/"+channel.ID.String()+"/recordings", nil, &owner)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, decodeBody[domain.ChannelRecordings](t, w).Total)
	})

	t.Run("recordings_for_stranger_forbidden", func(t *testing.T) {
		api := newTestAPI(t)
		stranger := uuid.New()
		api.channels.EXPECT().GetChannelRecordings(gomock.Any(), gomock.Any(), channel.ID, stranger).
			Return(nil, domain.ErrForbidden)

		w := api.do(t, http.MethodGet, "/api/channels/"+channel.ID.String()+"/recordings", nil, &stranger)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestChannelHandler_UpdateAndDelete(t *testing.T) {
	owner := uuid.New()
	channel := helpers.CreateTestChannel(owner)

	t.Run("updates_channel", func(t *testing.T) {
		api := newTestAPI(t)
		api.channels.EXPECT().
			UpdateChannel(gomock.Any(), gomock.Any(), channel.ID, domain.ChannelInput{Name: "renamed"}, owner).
			Return(channel, nil)

		w := api.do(t, http.MethodPut, "/api/channels/"+channel.ID.String(), domain.ChannelInput{Name: "renamed"}, &owner)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("deletes_channel", func(t *testing.T) {
		api := newTestAPI(t)
		api.channels.EXPECT().DeleteChannel(gomock.Any(), gomock.Any(), channel.ID, owner).Return(nil)

		w := api.do(t, http.MethodDelete, "/api/channels/"+channel.ID.String(), nil, &owner)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, channel.ID.String(), decodeBody[map[string]string](t, w)["channel_id"])
	})

	t.Run("delete_missing_channel", func(t *testing.T) {
		api := newTestAPI(t)
		api.channels.EXPECT().DeleteChannel(gomock.Any(), gomock.Any(), channel.ID, owner).Return(domain.ErrNotFound)

		w := api.do(t, http.MethodDelete, "/api/channels/"+channel.ID.String(), nil, &owner)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
