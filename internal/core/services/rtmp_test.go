package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/internal/core/services"
	"github.com/ammerola/spoutbreeze-be/test/helpers"
	"github.com/ammerola/spoutbreeze-be/test/mocks"
)

func TestRtmpService_CreateEndpoint(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name          string
		input         domain.RtmpEndpointInput
		setupMocks    func(*mocks.MockRtmpRepository)
		expectedError error
	}{
		{
			name:  "successful_create",
			input: domain.RtmpEndpointInput{Title: "YouTube", StreamKey: "abcd-1234", RtmpURL: "rtmp://a.rtmp.youtube.com/live2"},
			setupMocks: func(m *mocks.MockRtmpRepository) {
				m.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:          "rejects_http_url",
			input:         domain.RtmpEndpointInput{Title: "YouTube", StreamKey: "abcd-1234", RtmpURL: "https://youtube.com"},
			setupMocks:    func(*mocks.MockRtmpRepository) {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "rejects_missing_stream_key",
			input:         domain.RtmpEndpointInput{Title: "YouTube", RtmpURL: "rtmp://a.rtmp.youtube.com/live2"},
			setupMocks:    func(*mocks.MockRtmpRepository) {},
			expectedError: domain.ErrValidation,
		},
		{
			name:  "duplicate_stream_key",
			input: domain.RtmpEndpointInput{Title: "Twitch", StreamKey: "taken", RtmpURL: "rtmp://live.twitch.tv/app"},
			setupMocks: func(m *mocks.MockRtmpRepository) {
				m.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.ErrConflict)
			},
			expectedError: domain.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockRtmpRepository(ctrl)
			tt.setupMocks(repo)

			svc := services.NewRtmpService(repo, helpers.TestLogger())
			got, err := svc.CreateEndpoint(context.Background(), helpers.NewNopDB(), tt.input, userID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, got.UserID)
			assert.NotEqual(t, uuid.Nil, got.ID)
		})
	}
}

func TestRtmpService_UpdateEndpoint(t *testing.T) {
	owner := uuid.New()
	title := "Renamed"

	t.Run("owner_updates_title", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRtmpRepository(ctrl)
		endpoint := helpers.CreateTestEndpoint(owner)

		repo.EXPECT().FindByID(gomock.Any(), gomock.Any(), endpoint.ID).Return(endpoint, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		svc := services.NewRtmpService(repo, helpers.TestLogger())
		got, err := svc.UpdateEndpoint(context.Background(), helpers.NewNopDB(), endpoint.ID,
			domain.RtmpEndpointUpdate{Title: &title}, owner)

		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Title)
	})

	t.Run("stranger_is_forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRtmpRepository(ctrl)
		endpoint := helpers.CreateTestEndpoint(owner)

		repo.EXPECT().FindByID(gomock.Any(), gomock.Any(), endpoint.ID).Return(endpoint, nil)

		svc := services.NewRtmpService(repo, helpers.TestLogger())
		_, err := svc.UpdateEndpoint(context.Background(), helpers.NewNopDB(), endpoint.ID,
			domain.RtmpEndpointUpdate{Title: &title}, uuid.New())

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
