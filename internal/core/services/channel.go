// internal/core/services/channel.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
)

const recordingFetchConcurrency = 8

// ChannelService handles channel logic
type ChannelService struct {
	channels ports.ChannelRepository
	bbb      ports.BBBService
	logger   *slog.Logger
}

var _ ports.ChannelService = (*ChannelService)(nil)

// NewChannelService creates a new channel service. bbb serves recordings.
func NewChannelService(channels ports.ChannelRepository, bbb ports.BBBService, logger *slog.Logger) *ChannelService {
	return &ChannelService{
		channels: channels,
		bbb:      bbb,
		logger:   logger.With(slog.String("service", "channels")),
	}
}

// ListChannels returns every channel
func (s *ChannelService) ListChannels(ctx context.Context, q ports.DBTX) ([]*domain.Channel, error) {
	channels, err := s.channels.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}
	return channels, nil
}

// ListChannelsByUser returns the channels userID created
func (s *ChannelService) ListChannelsByUser(ctx context.Context, q ports.DBTX, userID uuid.UUID) ([]*domain.Channel, error) {
	channels, err := s.channels.ListByCreator(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user channels: %w", err)
	}
	return channels, nil
}

// GetChannelByID retrieves a channel by ID
func (s *ChannelService) GetChannelByID(ctx context.Context, q ports.DBTX, id uuid.UUID) (*domain.Channel, error) {
	channel, err := s.channels.FindByID(ctx, q, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}
	return channel, nil
}

// GetChannelByName retrieves one of userID's channels by name
func (s *ChannelService) GetChannelByName(ctx context.Context, q ports.DBTX, name string, userID uuid.UUID) (*domain.Channel, error) {
	channel, err := s.channels.FindByName(ctx, q, name, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get channel by name: %w", err)
	}
	return channel, nil
}

// GetChannelRecordings collects the BBB recordings of every event held in
// the channel. Only the owner may list them. A meeting whose recordings
// cannot be fetched is skipped.
func (s *ChannelService) GetChannelRecordings(ctx context.Context, q ports.DBTX, channelID, userID uuid.UUID) (*domain.ChannelRecordings, error) {
	channel, err := s.GetChannelByID(ctx, q, channelID)
	if err != nil {
		return nil, err
	}
	if channel.CreatorID != userID {
		return nil, fmt.Errorf("channel %s: %w", channelID, domain.ErrForbidden)
	}

	meetingIDs, err := s.channels.MeetingIDs(ctx, q, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list channel meetings: %w", err)
	}

	result := &domain.ChannelRecordings{ChannelID: channelID, Recordings: []domain.Recording{}}
	if len(meetingIDs) == 0 {
		return result, nil
	}

	var (
		mu         sync.Mutex
		perMeeting = make([][]domain.Recording, len(meetingIDs))
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(recordingFetchConcurrency)
	for i, meetingID := range meetingIDs {
		g.Go(func() error {
			recs, err := s.bbb.GetRecordings(gctx, []string{meetingID})
			if err != nil {
				s.logger.WarnContext(ctx, "failed to fetch meeting recordings",
					slog.String("meeting_id", meetingID),
					slog.String("error", err.Error()))
				return nil
			}
			mu.Lock()
			perMeeting[i] = recs
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	for _, recs := range perMeeting {
		result.Recordings = append(result.Recordings, recs...)
	}
	result.Total = len(result.Recordings)
	return result, nil
}

// CreateChannel creates a channel owned by userID
func (s *ChannelService) CreateChannel(ctx context.Context, q ports.DBTX, input domain.ChannelInput, userID uuid.UUID) (*domain.Channel, error) {
	channel := &domain.Channel{Name: input.Name, CreatorID: userID}
	if err := channel.Validate(); err != nil {
		return nil, err
	}
	channel.PrepareForStorage()

	if err := s.channels.Create(ctx, q, channel); err != nil {
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	s.logger.InfoContext(ctx, "created channel",
		slog.String("channel_id", channel.ID.String()),
		slog.String("user_id", userID.String()))
	return channel, nil
}

// UpdateChannel renames a channel. Only the owner may rename it.
func (s *ChannelService) UpdateChannel(ctx context.Context, q ports.DBTX, id uuid.UUID, input domain.ChannelInput, userID uuid.UUID) (*domain.Channel, error) {
	channel, err := s.owned(ctx, q, id, userID)
	if err != nil {
		return nil, err
	}

	channel.Name = input.Name
	if err := channel.Validate(); err != nil {
		return nil, err
	}
	channel.UpdatedAt = time.Now().UTC()

	if err := s.channels.Update(ctx, q, channel); err != nil {
		return nil, fmt.Errorf("failed to update channel: %w", err)
	}
	return channel, nil
}

// DeleteChannel removes a channel and, through the cascade, its events
func (s *ChannelService) DeleteChannel(ctx context.Context, q ports.DBTX, id, userID uuid.UUID) error {
	if _, err := s.owned(ctx, q, id, userID); err != nil {
		return err
	}
	if err := s.channels.Delete(ctx, q, id); err != nil {
		return fmt.Errorf("failed to delete channel: %w", err)
	}

	s.logger.InfoContext(ctx, "deleted channel", slog.String("channel_id", id.String()))
	return nil
}

// GetOrCreateChannel returns userID's channel called name, creating it when
// missing. The flag reports whether it was created.
func (s *ChannelService) GetOrCreateChannel(ctx context.Context, q ports.DBTX, name string, userID uuid.UUID) (*domain.Channel, bool, error) {
	channel, err := s.channels.FindByName(ctx, q, name, userID)
	if err == nil {
		return channel, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to look up channel: %w", err)
	}

	channel, err = s.CreateChannel(ctx, q, domain.ChannelInput{Name: name}, userID)
	if err != nil {
		return nil, false, err
	}
	return channel, true, nil
}

func (s *ChannelService) owned(ctx context.Context, q ports.DBTX, id, userID uuid.UUID) (*domain.Channel, error) {
	channel, err := s.GetChannelByID(ctx, q, id)
	if err != nil {
		return nil, err
	}
	if channel.CreatorID != userID {
		return nil, fmt.Errorf("channel %s: %w", id, domain.ErrForbidden)
	}
	return channel, nil
}
