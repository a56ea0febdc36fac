// internal/handlers/bbb.go
package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
)

// BBBHandler exposes meeting state and receives BBB callbacks
type BBBHandler struct {
	base
	service ports.BBBService
	db      ports.DBTX
}

// NewBBBHandler creates a new BBB handler
func NewBBBHandler(service ports.BBBService, db ports.DBTX, logger *slog.Logger) *BBBHandler {
	return &BBBHandler{
		base:    base{logger: logger.With(slog.String("handler", "bbb"))},
		service: service,
		db:      db,
	}
}

// GetMeetings handles GET /api/bbb/meetings
func (h *BBBHandler) GetMeetings(w http.ResponseWriter, r *http.Request) {
	meetings, err := h.service.GetMeetings(r.Context())
	if err != nil {
		h.respondServiceError(w, r, "get meetings", err)
		return
	}
	if meetings == nil {
		meetings = []domain.MeetingInfo{}
	}
	h.respondJSON(w, http.StatusOK, meetings)
}

// IsMeetingRunning handles GET /api/bbb/meetings/{meetingId}/running
func (h *BBBHandler) IsMeetingRunning(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.IsMeetingRunning(r.Context(), r.PathValue("meetingId"))
	if err != nil {
		h.respondServiceError(w, r, "is meeting running", err)
		return
	}
	h.respondJSON(w, http.StatusOK, status)
}

// GetMeetingInfo handles GET /api/bbb/meetings/{meetingId}/info?password=
func (h *BBBHandler) GetMeetingInfo(w http.ResponseWriter, r *http.Request) {
	password := r.URL.Query().Get("password")
	if password == "" {
		h.respondError(w, http.StatusBadRequest, "password is required")
		return
	}

	info, err := h.service.GetMeetingInfo(r.Context(), r.PathValue("meetingId"), password)
	if err != nil {
		h.respondServiceError(w, r, "get meeting info", err)
		return
	}
	h.respondJSON(w, http.StatusOK, info)
}

// GetRecordings handles GET /api/bbb/recordings?meeting_id=a,b
func (h *BBBHandler) GetRecordings(w http.ResponseWriter, r *http.Request) {
	var ids []string
	for _, raw := range r.URL.Query()["meeting_id"] {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}

	recordings, err := h.service.GetRecordings(r.Context(), ids)
	if err != nil {
		h.respondServiceError(w, r, "get recordings", err)
		return
	}
	if recordings == nil {
		recordings = []domain.Recording{}
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"recordings": recordings,
		"total":      len(recordings),
	})
}

// MeetingEnded handles POST /api/bbb/callback/meeting-ended. BBB calls it
// with ?meetingID=; a JSON MeetingEnded body is accepted as well.
func (h *BBBHandler) MeetingEnded(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var payload domain.MeetingEnded
	if id := r.URL.Query().Get("meetingID"); id != "" {
		payload.MeetingID = id
	} else if !h.decode(w, r, &payload) {
		return
	}
	if payload.MeetingID == "" {
		h.respondError(w, http.StatusBadRequest, "meeting_id is required")
		return
	}

	event, err := h.service.MeetingEndedCallback(ctx, h.db, payload.MeetingID, payload.EventID)
	if err != nil {
		h.respondServiceError(w, r, "meeting ended callback", err)
		return
	}

	h.logger.InfoContext(ctx, "meeting ended callback processed",
		slog.String("meeting_id", payload.MeetingID),
		slog.Bool("event_ended", event != nil))

	if event == nil {
		h.respondJSON(w, http.StatusOK, map[string]string{
			"message":    "Meeting ended",
			"meeting_id": payload.MeetingID,
		})
		return
	}
	h.respondJSON(w, http.StatusOK, publicEvent(event))
}
