// internal/handlers/respond.go
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/internal/handlers/middleware"
)

const maxBodyBytes = 1 << 20

// base carries the response helpers shared by every resource handler
type base struct {
	logger *slog.Logger
}

func (h base) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

// publicEvent returns a copy of e without the meeting passwords
func publicEvent(e *domain.Event) *domain.Event {
	if e == nil {
		return nil
	}
	out := *e
	out.ModeratorPW = ""
	out.AttendeePW = ""
	return &out
}

func publicEvents(events []*domain.Event) []*domain.Event {
	out := make([]*domain.Event, len(events))
	for i, e := range events {
		out[i] = publicEvent(e)
	}
	return out
}

func (h base) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError translates domain errors into status codes. Anything
// unrecognised is logged and answered with 500.
func (h base) respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var (
		validation *domain.ValidationError
		apiErr     *domain.APIError
	)

	switch {
	case errors.As(err, &validation):
		h.respondJSON(w, http.StatusBadRequest, map[string]string{
			"error": validation.Error(),
			"field": validation.Field,
		})
	case errors.Is(err, domain.ErrValidation):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		h.respondError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrForbidden):
		h.respondError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, domain.ErrConflict):
		h.respondError(w, http.StatusConflict, "Already exists")
	case errors.Is(err, domain.ErrInvalidTransition):
		h.respondError(w, http.StatusConflict, err.Error())
	case errors.As(err, &apiErr):
		h.logger.WarnContext(r.Context(), op+" failed on BBB server",
			slog.String("message_key", apiErr.MessageKey),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusBadGateway, apiErr.Message)
	default:
		h.logger.ErrorContext(r.Context(), op+" failed",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decode reads a JSON body, answering 400 itself when it cannot
func (h base) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// pathUUID parses a uuid path segment, answering 400 itself when malformed
func (h base) pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}

// principal returns the caller, answering 401 itself when there is none
func (h base) principal(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := middleware.UserID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Authentication required")
		return uuid.Nil, false
	}
	return id, true
}

// optionalPrincipal returns the caller when there is one
func optionalPrincipal(r *http.Request) *uuid.UUID {
	if id, ok := middleware.UserID(r.Context()); ok {
		return &id
	}
	return nil
}

func queryInt(r *http.Request, name string, def int) int {
	if raw := r.URL.Query().Get(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return def
}
