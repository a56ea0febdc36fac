// internal/handlers/cache_admin.go
package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/ammerola/spoutbreeze-be/internal/core/cache"
	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
)

// UserCacheInvalidator drops every cached read about a user
type UserCacheInvalidator interface {
	InvalidateUser(ctx context.Context, id uuid.UUID, keycloakID string) []string
}

// CacheAdminHandler exposes manual cache maintenance to admins
type CacheAdminHandler struct {
	base
	users       ports.UserService
	invalidator UserCacheInvalidator
	db          ports.DBTX
}

// NewCacheAdminHandler creates a new cache admin handler
func NewCacheAdminHandler(users ports.UserService, invalidator UserCacheInvalidator, db ports.DBTX, logger *slog.Logger) *CacheAdminHandler {
	return &CacheAdminHandler{
		base:        base{logger: logger.With(slog.String("handler", "cache_admin"))},
		users:       users,
		invalidator: invalidator,
		db:          db,
	}
}

// InvalidationResult reports a manual invalidation
type InvalidationResult struct {
	UserID   uuid.UUID `json:"user_id"`
	Patterns []string  `json:"patterns"`
	Failed   []string  `json:"failed"`
}

// InvalidateUser handles POST /api/admin/cache/users/{id}/invalidate. The
// keycloak id is taken from ?keycloak_id= or looked up when omitted.
func (h *CacheAdminHandler) InvalidateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	callerID, ok := h.principal(w, r)
	if !ok {
		return
	}
	id, ok := h.pathUUID(w, r, "id")
	if !ok {
		return
	}

	admin, err := isAdmin(ctx, h.users, h.db, callerID)
	if err != nil {
		h.respondServiceError(w, r, "check caller roles", err)
		return
	}
	if !admin {
		h.respondError(w, http.StatusForbidden, "Forbidden")
		return
	}

	keycloakID := r.URL.Query().Get("keycloak_id")
	if keycloakID == "" {
		user, err := h.users.GetUserByID(ctx, h.db, id)
		switch {
		case errors.Is(err, domain.ErrNotFound):
		case err != nil:
			h.respondServiceError(w, r, "lookup user", err)
			return
		default:
			keycloakID = user.KeycloakID
		}
	}

	failed := h.invalidator.InvalidateUser(ctx, id, keycloakID)
	if failed == nil {
		failed = []string{}
	}

	h.logger.InfoContext(ctx, "user cache invalidated",
		slog.String("user_id", id.String()),
		slog.Int("failed", len(failed)))
	h.respondJSON(w, http.StatusOK, InvalidationResult{
		UserID:   id,
		Patterns: cache.UserPatterns(id, keycloakID),
		Failed:   failed,
	})
}
