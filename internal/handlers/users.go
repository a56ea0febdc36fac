// internal/handlers/users.go
package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/google/uuid"

	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	base
	service ports.UserService
	db      ports.DBTX
}

// NewUserHandler creates a new user handler
func NewUserHandler(service ports.UserService, db ports.DBTX, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		base:    base{logger: logger.With(slog.String("handler", "users"))},
		service: service,
		db:      db,
	}
}

// RoleUpdateRequest is the body of PUT /api/users/{id}/role
type RoleUpdateRequest struct {
	Role string `json:"role"`
}

// Me handles GET /api/users/me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.principal(w, r)
	if !ok {
		return
	}

	user, err := h.service.GetUserByID(r.Context(), h.db, userID)
	if err != nil {
		h.respondServiceError(w, r, "get current user", err)
		return
	}
	h.respondJSON(w, http.StatusOK, user)
}

// ListUsers handles GET /api/users?skip=&limit=
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.principal(w, r); !ok {
		return
	}

	users, err := h.service.ListUsers(r.Context(), h.db, queryInt(r, "skip", 0), queryInt(r, "limit", 100))
	if err != nil {
		h.respondServiceError(w, r, "list users", err)
		return
	}
	h.respondJSON(w, http.StatusOK, users)
}

// GetUser handles GET /api/users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.service.GetUserByID(r.Context(), h.db, id)
	if err != nil {
		h.respondServiceError(w, r, "get user", err)
		return
	}
	h.respondJSON(w, http.StatusOK, user)
}

// GetUserRoles handles GET /api/users/{id}/roles
func (h *UserHandler) GetUserRoles(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id")
	if !ok {
		return
	}

	roles, err := h.service.GetUserRoles(r.Context(), h.db, id)
	if err != nil {
		h.respondServiceError(w, r, "get user roles", err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"user_id": id,
		"roles":   roles,
	})
}

// UpdateProfile handles PUT /api/users/{id}. Users edit their own profile,
// admins edit anyone's.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	callerID, ok := h.principal(w, r)
	if !ok {
		return
	}
	id, ok := h.pathUUID(w, r, "id")
	if !ok {
		return
	}

	if callerID != id {
		admin, err := isAdmin(ctx, h.service, h.db, callerID)
		if err != nil {
			h.respondServiceError(w, r, "check caller roles", err)
			return
		}
		if !admin {
			h.respondError(w, http.StatusForbidden, "Forbidden")
			return
		}
	}

	var update domain.UserUpdate
	if !h.decode(w, r, &update) {
		return
	}

	user, err := h.service.UpdateProfile(ctx, h.db, id, update)
	if err != nil {
		h.respondServiceError(w, r, "update profile", err)
		return
	}

	h.logger.InfoContext(ctx, "user profile updated",
		slog.String("user_id", id.String()))
	h.respondJSON(w, http.StatusOK, user)
}

// UpdateRole handles PUT /api/users/{id}/role (admin only)
func (h *UserHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	callerID, ok := h.principal(w, r)
	if !ok {
		return
	}
	id, ok := h.pathUUID(w, r, "id")
	if !ok {
		return
	}

	admin, err := isAdmin(ctx, h.service, h.db, callerID)
	if err != nil {
		h.respondServiceError(w, r, "check caller roles", err)
		return
	}
	if !admin {
		h.respondError(w, http.StatusForbidden, "Forbidden")
		return
	}

	var req RoleUpdateRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.service.UpdateRole(ctx, h.db, id, req.Role)
	if err != nil {
		h.respondServiceError(w, r, "update role", err)
		return
	}

	h.logger.InfoContext(ctx, "user role updated",
		slog.String("user_id", id.String()),
		slog.String("role", req.Role))
	h.respondJSON(w, http.StatusOK, user)
}

func isAdmin(ctx context.Context, users ports.UserService, q ports.DBTX, id uuid.UUID) (bool, error) {
	roles, err := users.GetUserRoles(ctx, q, id)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return slices.Contains(roles, domain.RoleAdmin), nil
}
