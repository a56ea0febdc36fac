// internal/core/services/user.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
)

const (
	defaultPageSize = 100
	maxPageSize     = 1000
)

// UserService handles user profile and role logic
type UserService struct {
	users  ports.UserRepository
	logger *slog.Logger
}

var _ ports.UserService = (*UserService)(nil)

// NewUserService creates a new user service
func NewUserService(users ports.UserRepository, logger *slog.Logger) *UserService {
	return &UserService{
		users:  users,
		logger: logger.With(slog.String("service", "users")),
	}
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(ctx context.Context, q ports.DBTX, id uuid.UUID) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, q, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetUserByKeycloakID retrieves a user by identity-provider subject
func (s *UserService) GetUserByKeycloakID(ctx context.Context, q ports.DBTX, keycloakID string) (*domain.User, error) {
	user, err := s.users.FindByKeycloakID(ctx, q, keycloakID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by keycloak id: %w", err)
	}
	return user, nil
}

// GetUserRoles returns the user's role names
func (s *UserService) GetUserRoles(ctx context.Context, q ports.DBTX, id uuid.UUID) ([]string, error) {
	user, err := s.GetUserByID(ctx, q, id)
	if err != nil {
		return nil, err
	}
	return user.RolesList(), nil
}

// ListUsers returns a page of users
func (s *UserService) ListUsers(ctx context.Context, q ports.DBTX, skip, limit int) ([]*domain.User, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	users, err := s.users.List(ctx, q, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateProfile applies the set fields of update
func (s *UserService) UpdateProfile(ctx context.Context, q ports.DBTX, id uuid.UUID, update domain.UserUpdate) (*domain.User, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	user, err := s.GetUserByID(ctx, q, id)
	if err != nil {
		return nil, err
	}

	update.Apply(user)
	if err := user.Validate(); err != nil {
		return nil, err
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, q, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.InfoContext(ctx, "updated user profile", slog.String("user_id", id.String()))
	return user, nil
}

// UpdateRole replaces the user's roles with role
func (s *UserService) UpdateRole(ctx context.Context, q ports.DBTX, id uuid.UUID, role string) (*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, domain.Invalid("role", "must be one of admin, moderator, streamer, viewer")
	}

	user, err := s.GetUserByID(ctx, q, id)
	if err != nil {
		return nil, err
	}

	user.Roles = role
	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, q, user); err != nil {
		return nil, fmt.Errorf("failed to update user role: %w", err)
	}

	s.logger.InfoContext(ctx, "updated user role",
		slog.String("user_id", id.String()),
		slog.String("role", role))
	return user, nil
}
