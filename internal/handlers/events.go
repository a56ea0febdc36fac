// internal/handlers/events.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
)

// EventHandler handles event-related HTTP requests
type EventHandler struct {
	base
	service ports.EventService
	db      ports.DBTX
}

// NewEventHandler creates a new event handler
func NewEventHandler(service ports.EventService, db ports.DBTX, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		base:    base{logger: logger.With(slog.String("handler", "events"))},
		service: service,
		db:      db,
	}
}

// JoinRequest is the body of POST /api/events/{id}/join
type JoinRequest struct {
	FullName string `json:"full_name"`
}

// EventList wraps list answers
type EventList struct {
	Events []*domain.Event `json:"events"`
	Total  int             `json:"total"`
}

func (h *EventHandler) respondList(w http.ResponseWriter, events []*domain.Event) {
	if events == nil {
		events = []*domain.Event{}
	}
	h.respondJSON(w, http.StatusOK, EventList{Events: publicEvents(events), Total: len(events)})
}

// ListAll handles GET /api/events/all. ?status= narrows to one status; a
// caller only sees their own events when filtering by status.
func (h *EventHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		events []*domain.Event
		err    error
	)
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.EventStatus(raw)
		if !status.Valid() {
			h.respondError(w, http.StatusBadRequest, "Invalid status")
			return
		}
		events, err = h.service.ListEventsByStatus(ctx, h.db, status, optionalPrincipal(r))
	} else {
		events, err = h.service.ListEvents(ctx, h.db)
	}
	if err != nil {
		h.respondServiceError(w, r, "list events", err)
		return
	}
	h.respondList(w, events)
}

// ListUpcoming handles GET /api/events/upcoming
func (h *EventHandler) ListUpcoming(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.ListUpcoming(r.Context(), h.db, optionalPrincipal(r))
	if err != nil {
		h.respondServiceError(w, r, "list upcoming events", err)
		return
	}
	h.respondList(w, events)
}

// ListPast handles GET /api/events/past
func (h *EventHandler) ListPast(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.ListPast(r.Context(), h.db, optionalPrincipal(r))
	if err != nil {
		h.respondServiceError(w, r, "list past events", err)
		return
	}
	h.respondList(w, events)
}

// ListLive handles GET /api/events/live
func (h *EventHandler) ListLive(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.ListLive(r.Context(), h.db, optionalPrincipal(r))
	if err != nil {
		h.respondServiceError(w, r, "list live events", err)
		return
	}
	h.respondList(w, events)
}

// GetEvent handles GET /api/events/{id}
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id")
	if !ok {
		return
	}

	event, err := h.service.GetEventByID(r.Context(), h.db, id)
	if err != nil {
		h.respondServiceError(w, r, "get event", err)
		return
	}
	h.respondJSON(w, http.StatusOK, publicEvent(event))
}

// ListByChannel handles GET /api/events/channel/{channelId}
func (h *EventHandler) ListByChannel(w http.ResponseWriter, r *http.Request) {
	channelID, ok := h.pathUUID(w, r, "channelId")
	if !ok {
		return
	}

	events, err := h.service.ListEventsByChannel(r.Context(), h.db, channelID)
	if err != nil {
		h.respondServiceError(w, r, "list channel events", err)
		return
	}
	h.respondList(w, events)
}

// CreateEvent handles POST /api/events
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.principal(w, r)
	if !ok {
		return
	}

	var input domain.EventCreate
	if !h.decode(w, r, &input) {
		return
	}

	event, err := h.service.CreateEvent(ctx, h.db, input, userID)
	if err != nil {
		h.respondServiceError(w, r, "create event", err)
		return
	}

	h.logger.InfoContext(ctx, "event created",
		slog.String("event_id", event.ID.String()),
		slog.String("meeting_id", event.MeetingID))
	h.respondJSON(w, http.StatusCreated, publicEvent(event))
}

// StartEvent handles POST /api/events/{id}/start
func (h *EventHandler) StartEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.principal(w, r)
	if !ok {
		return
	}
	id, ok := h.pathUUID(w, r, "id")
	if !ok {
		return
	}

	links, err := h.service.StartEvent(ctx, h.db, id, userID)
	if err != nil {
		h.respondServiceError(w, r, "start event", err)
		return
	}

	h.logger.InfoContext(ctx, "event started",
		slog.String("event_id", id.String()),
		slog.String("meeting_id", links.MeetingID))
	h.respondJSON(w, http.StatusOK, links)
}

// EndEvent handles POST /api/events/{id}/end
func (h *EventHandler) EndEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.principal(w, r)
	if !ok {
		return
	}
	id, ok := h.pathUUID(w, r, "id")
	if !ok {
		return
	}

	event, err := h.service.EndEvent(ctx, h.db, id, userID)
	if err != nil {
		h.respondServiceError(w, r, "end event", err)
		return
	}

	h.logger.InfoContext(ctx, "event ended",
		slog.String("event_id", id.String()))
	h.respondJSON(w, http.StatusOK, publicEvent(event))
}

// CancelEvent handles POST /api/events/{id}/cancel
func (h *EventHandler) CancelEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.principal(w, r)
	if !ok {
		return
	}
	id, ok := h.pathUUID(w, r, "id")
	if !ok {
		return
	}

	event, err := h.service.CancelEvent(r.Context(), h.db, id, userID)
	if err != nil {
		h.respondServiceError(w, r, "cancel event", err)
		return
	}
	h.respondJSON(w, http.StatusOK, publicEvent(event))
}

// JoinEvent handles POST /api/events/{id}/join. Anonymous callers must
// name themselves.
func (h *EventHandler) JoinEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req JoinRequest
	if r.ContentLength != 0 && !h.decode(w, r, &req) {
		return
	}

	caller := optionalPrincipal(r)
	if caller == nil && req.FullName == "" {
		h.respondError(w, http.StatusUnauthorized, "Authentication or full_name required")
		return
	}

	var userID uuid.UUID
	if caller != nil {
		userID = *caller
	}
	links, err := h.service.JoinEvent(r.Context(), h.db, id, userID, req.FullName)
	if err != nil {
		h.respondServiceError(w, r, "join event", err)
		return
	}
	h.respondJSON(w, http.StatusOK, links)
}

// UpdateEvent handles PUT /api/events/{id}
func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.principal(w, r)
	if !ok {
		return
	}
	id, ok := h.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var update domain.EventUpdate
	if !h.decode(w, r, &update) {
		return
	}

	event, err := h.service.UpdateEvent(r.Context(), h.db, id, update, userID)
	if err != nil {
		h.respondServiceError(w, r, "update event", err)
		return
	}
	h.respondJSON(w, http.StatusOK, publicEvent(event))
}

// DeleteEvent handles DELETE /api/events/{id}
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.principal(w, r)
	if !ok {
		return
	}
	id, ok := h.pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteEvent(ctx, h.db, id, userID); err != nil {
		h.respondServiceError(w, r, "delete event", err)
		return
	}

	h.logger.InfoContext(ctx, "event deleted",
		slog.String("event_id", id.String()))
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Event deleted successfully",
		"event_id": id,
	})
}
