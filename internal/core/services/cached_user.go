// internal/core/services/cached_user.go
package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/ammerola/spoutbreeze-be/internal/core/cache"
	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
)

// CachedUserService serves user reads through the cache and invalidates the
// user's entries after successful writes
type CachedUserService struct {
	inner ports.UserService
	rt    *cache.ReadThrough
	inv   *cache.Invalidator
	ttl   cache.TTLs
}

var _ ports.UserService = (*CachedUserService)(nil)

// NewCachedUserService wraps inner with read-through caching
func NewCachedUserService(inner ports.UserService, rt *cache.ReadThrough, inv *cache.Invalidator, ttl cache.TTLs) *CachedUserService {
	return &CachedUserService{inner: inner, rt: rt, inv: inv, ttl: ttl.WithDefaults()}
}

func (s *CachedUserService) GetUserByID(ctx context.Context, q ports.DBTX, id uuid.UUID) (*domain.User, error) {
	o := cache.Options{Prefix: cache.PrefixUserProfile, Name: "get_user_by_id", TTL: s.ttl.Short, Tag: id.String()}
	return cache.CachedDB(ctx, s.rt, o, func() (*domain.User, error) {
		return s.inner.GetUserByID(ctx, q, id)
	}, q, id)
}

func (s *CachedUserService) GetUserByKeycloakID(ctx context.Context, q ports.DBTX, keycloakID string) (*domain.User, error) {
	o := cache.Options{Prefix: cache.PrefixUserKeycloak, Name: "get_user_by_keycloak_id", TTL: s.ttl.Short, Tag: keycloakID}
	return cache.CachedDB(ctx, s.rt, o, func() (*domain.User, error) {
		return s.inner.GetUserByKeycloakID(ctx, q, keycloakID)
	}, q, keycloakID)
}

func (s *CachedUserService) GetUserRoles(ctx context.Context, q ports.DBTX, id uuid.UUID) ([]string, error) {
	o := cache.Options{Prefix: cache.PrefixUserRoles, Name: "get_user_roles", TTL: s.ttl.Long, Tag: id.String()}
	return cache.CachedDB(ctx, s.rt, o, func() ([]string, error) {
		return s.inner.GetUserRoles(ctx, q, id)
	}, q, id)
}

func (s *CachedUserService) ListUsers(ctx context.Context, q ports.DBTX, skip, limit int) ([]*domain.User, error) {
	o := cache.Options{Prefix: cache.PrefixUsersList, Name: "list_users", TTL: s.ttl.Long}
	return cache.CachedDB(ctx, s.rt, o, func() ([]*domain.User, error) {
		return s.inner.ListUsers(ctx, q, skip, limit)
	}, q, cache.Named("skip", skip), cache.Named("limit", limit))
}

func (s *CachedUserService) UpdateProfile(ctx context.Context, q ports.DBTX, id uuid.UUID, update domain.UserUpdate) (*domain.User, error) {
	user, err := s.inner.UpdateProfile(ctx, q, id, update)
	if err != nil {
		return nil, err
	}
	s.InvalidateUser(ctx, user.ID, user.KeycloakID)
	return user, nil
}

func (s *CachedUserService) UpdateRole(ctx context.Context, q ports.DBTX, id uuid.UUID, role string) (*domain.User, error) {
	user, err := s.inner.UpdateRole(ctx, q, id, role)
	if err != nil {
		return nil, err
	}
	s.InvalidateUser(ctx, user.ID, user.KeycloakID)
	return user, nil
}

// InvalidateUser drops every cached read about a user and returns the
// patterns that could not be deleted. keycloakID may be empty.
func (s *CachedUserService) InvalidateUser(ctx context.Context, id uuid.UUID, keycloakID string) []string {
	return s.inv.Invalidate(ctx, cache.UserPatterns(id, keycloakID)...)
}
