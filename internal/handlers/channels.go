// internal/handlers/channels.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
)

// ChannelHandler handles channel-related HTTP requests
type ChannelHandler struct {
	base
	service ports.ChannelService
	db      ports.DBTX
}

// NewChannelHandler creates a new channel handler
func NewChannelHandler(service ports.ChannelService, db ports.DBTX, logger *slog.Logger) *ChannelHandler {
	return &ChannelHandler{
		base:    base{logger: logger.With(slog.String("handler", "channels"))},
		service: service,
		db:      db,
	}
}

// ListChannels handles GET /api/channels
func (h *ChannelHandler) ListChannels(w http.ResponseWriter, r *http.Request) {
	channels, err := h.service.ListChannels(r.Context(), h.db)
	if err != nil {
		h.respondServiceError(w, r, "list channels", err)
		return
	}
	h.respondJSON(w, http.StatusOK, channels)
}

// ListChannelsByUser handles GET /api/users/{userId}/channels
func (h *ChannelHandler) ListChannelsByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathUUID(w, r, "userId")
	if !ok {
		return
	}

	channels, err := h.service.ListChannelsByUser(r.Context(), h.db, userID)
	if err != nil {
		h.respondServiceError(w, r, "list user channels", err)
		return
	}
	h.respondJSON(w, http.StatusOK, channels)
}

// GetChannel handles GET /api/channels/{id}
func (h *ChannelHandler) GetChannel(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id")
	if !ok {
		return
	}

	channel, err := h.service.GetChannelByID(r.Context(), h.db, id)
	if err != nil {
		h.respondServiceError(w, r, "get channel", err)
		return
	}
	h.respondJSON(w, http.StatusOK, channel)
}

// GetChannelRecordings handles GET /api/channels/{id}/recordings
func (h *ChannelHandler) GetChannelRecordings(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.principal(w, r)
	if !ok {
		return
	}
	id, ok := h.pathUUID(w, r, "id")
	if !ok {
		return
	}

	recordings, err := h.service.GetChannelRecordings(r.Context(), h.db, id, userID)
	if err != nil {
		h.respondServiceError(w, r, "get channel recordings", err)
		return
	}
	h.respondJSON(w, http.StatusOK, recordings)
}

// CreateChannel handles POST /api/channels
func (h *ChannelHandler) CreateChannel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.principal(w, r)
	if !ok {
		return
	}

	var input domain.ChannelInput
	if !h.decode(w, r, &input) {
		return
	}

	channel, err := h.service.CreateChannel(ctx, h.db, input, userID)
	if err != nil {
		h.respondServiceError(w, r, "create channel", err)
		return
	}

	h.logger.InfoContext(ctx, "channel created",
		slog.String("channel_id", channel.ID.String()),
		slog.String("name", channel.Name))
	h.respondJSON(w, http.StatusCreated, channel)
}

// UpdateChannel handles PUT /api/channels/{id}
func (h *ChannelHandler) UpdateChannel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.principal(w, r)
	if !ok {
		return
	}
	id, ok := h.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var input domain.ChannelInput
	if !h.decode(w, r, &input) {
		return
	}

	channel, err := h.service.UpdateChannel(ctx, h.db, id, input, userID)
	if err != nil {
		h.respondServiceError(w, r, "update channel", err)
		return
	}
	h.respondJSON(w, http.StatusOK, channel)
}

// DeleteChannel handles DELETE /api/channels/{id}
func (h *ChannelHandler) DeleteChannel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.principal(w, r)
	if !ok {
		return
	}
	id, ok := h.pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteChannel(ctx, h.db, id, userID); err != nil {
		h.respondServiceError(w, r, "delete channel", err)
		return
	}

	h.logger.InfoContext(ctx, "channel deleted",
		slog.String("channel_id", id.String()))
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Channel deleted successfully",
		"channel_id": id,
	})
}
