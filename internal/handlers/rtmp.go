// internal/handlers/rtmp.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
)

// RtmpHandler handles stream endpoint HTTP requests
type RtmpHandler struct {
	base
	service ports.RtmpService
	db      ports.DBTX
}

// NewRtmpHandler creates a new stream endpoint handler
func NewRtmpHandler(service ports.RtmpService, db ports.DBTX, logger *slog.Logger) *RtmpHandler {
	return &RtmpHandler{
		base:    base{logger: logger.With(slog.String("handler", "stream_endpoints"))},
		service: service,
		db:      db,
	}
}

// ListEndpoints handles GET /api/stream-endpoints
func (h *RtmpHandler) ListEndpoints(w http.ResponseWriter, r *http.Request) {
	endpoints, err := h.service.ListEndpoints(r.Context(), h.db)
	if err != nil {
		h.respondServiceError(w, r, "list stream endpoints", err)
		return
	}
	h.respondJSON(w, http.StatusOK, endpoints)
}

// ListEndpointsByUser handles GET /api/stream-endpoints/user/{userId}
func (h *RtmpHandler) ListEndpointsByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathUUID(w, r, "userId")
	if !ok {
		return
	}

	endpoints, err := h.service.ListEndpointsByUser(r.Context(), h.db, userID)
	if err != nil {
		h.respondServiceError(w, r, "list user stream endpoints", err)
		return
	}
	h.respondJSON(w, http.StatusOK, endpoints)
}

// GetEndpoint handles GET /api/stream-endpoints/{id}
func (h *RtmpHandler) GetEndpoint(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id")
	if !ok {
		return
	}

	endpoint, err := h.service.GetEndpointByID(r.Context(), h.db, id)
	if err != nil {
		h.respondServiceError(w, r, "get stream endpoint", err)
		return
	}
	h.respondJSON(w, http.StatusOK, endpoint)
}

// CreateEndpoint handles POST /api/stream-endpoints
func (h *RtmpHandler) CreateEndpoint(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.principal(w, r)
	if !ok {
		return
	}

	var input domain.RtmpEndpointInput
	if !h.decode(w, r, &input) {
		return
	}

	endpoint, err := h.service.CreateEndpoint(ctx, h.db, input, userID)
	if err != nil {
		h.respondServiceError(w, r, "create stream endpoint", err)
		return
	}

	h.logger.InfoContext(ctx, "stream endpoint created",
		slog.String("endpoint_id", endpoint.ID.String()))
	h.respondJSON(w, http.StatusCreated, endpoint)
}

// UpdateEndpoint handles PUT /api/stream-endpoints/{id}
func (h *RtmpHandler) UpdateEndpoint(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.principal(w, r)
	if !ok {
		return
	}
	id, ok := h.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var update domain.RtmpEndpointUpdate
	if !h.decode(w, r, &update) {
		return
	}

	endpoint, err := h.service.UpdateEndpoint(r.Context(), h.db, id, update, userID)
	if err != nil {
		h.respondServiceError(w, r, "update stream endpoint", err)
		return
	}
	h.respondJSON(w, http.StatusOK, endpoint)
}

// DeleteEndpoint handles DELETE /api/stream-endpoints/{id}
func (h *RtmpHandler) DeleteEndpoint(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.principal(w, r)
	if !ok {
		return
	}
	id, ok := h.pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteEndpoint(ctx, h.db, id, userID); err != nil {
		h.respondServiceError(w, r, "delete stream endpoint", err)
		return
	}

	h.logger.InfoContext(ctx, "stream endpoint deleted",
		slog.String("endpoint_id", id.String()))
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":     "Stream endpoint deleted successfully",
		"endpoint_id": id,
	})
}
