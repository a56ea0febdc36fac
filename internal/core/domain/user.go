// internal/core/domain/user.go
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role names understood by the platform
const (
	RoleAdmin       = "admin"
	RoleModerator   = "moderator"
	RoleStreamer    = "streamer"
	RoleViewer      = "viewer"
	DefaultUserRole = RoleViewer
)

// User is a platform account mirrored from the identity provider
type User struct {
	ID         uuid.UUID `json:"id"`
	KeycloakID string    `json:"keycloak_id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Roles      string    `json:"roles"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// RolesList splits the comma-separated role column
func (u *User) RolesList() []string {
	if u.Roles == "" {
		return []string{}
	}
	parts := strings.Split(u.Roles, ",")
	roles := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			roles = append(roles, p)
		}
	}
	return roles
}

// HasRole reports whether the user carries role
func (u *User) HasRole(role string) bool {
	for _, r := range u.RolesList() {
		if strings.EqualFold(r, role) {
			return true
		}
	}
	return false
}

// FullName returns "first last", falling back to the username
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

// Validate performs domain validation on the user
func (u *User) Validate() error {
	if u.KeycloakID == "" {
		return Invalid("keycloak_id", "is required")
	}
	if u.Username == "" {
		return Invalid("username", "is required")
	}
	if u.Email == "" || !strings.Contains(u.Email, "@") {
		return Invalid("email", "must be a valid address")
	}
	if u.Roles == "" {
		u.Roles = DefaultUserRole
	}
	return nil
}

// PrepareForStorage sets identifiers and timestamps
func (u *User) PrepareForStorage() {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
}

// UserUpdate carries the mutable profile fields. Nil fields are left unchanged.
type UserUpdate struct {
	Username  *string `json:"username,omitempty"`
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

// Validate rejects blank replacements for required fields
func (u *UserUpdate) Validate() error {
	if u.Username != nil && strings.TrimSpace(*u.Username) == "" {
		return Invalid("username", "cannot be empty")
	}
	if u.Email != nil && !strings.Contains(*u.Email, "@") {
		return Invalid("email", "must be a valid address")
	}
	return nil
}

// Apply copies the set fields onto user
func (u *UserUpdate) Apply(user *User) {
	if u.Username != nil {
		user.Username = *u.Username
	}
	if u.Email != nil {
		user.Email = *u.Email
	}
	if u.FirstName != nil {
		user.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		user.LastName = *u.LastName
	}
}

// ValidRole reports whether role is one of the known role names
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleModerator, RoleStreamer, RoleViewer:
		return true
	}
	return false
}
