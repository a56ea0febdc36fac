// internal/adapters/db/user_repository.go
package db

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
)

const userColumns = `id, keycloak_id, username, email, first_name, last_name, roles, is_active, created_at, updated_at`

// userRepository implements ports.UserRepository
type userRepository struct {
	logger *slog.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(logger *slog.Logger) ports.UserRepository {
	return &userRepository{
		logger: logger.With(slog.String("repository", "users")),
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.KeycloakID, &u.Username, &u.Email, &u.FirstName, &u.LastName,
		&u.Roles, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) FindByID(ctx context.Context, q ports.DBTX, id uuid.UUID) (*domain.User, error) {
	user, err := scanUser(q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, mapError("find user", err)
	}
	return user, nil
}

func (r *userRepository) FindByKeycloakID(ctx context.Context, q ports.DBTX, keycloakID string) (*domain.User, error) {
	user, err := scanUser(q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE keycloak_id = $1`, keycloakID))
	if err != nil {
		return nil, mapError("find user by keycloak id", err)
	}
	return user, nil
}

func (r *userRepository) List(ctx context.Context, q ports.DBTX, skip, limit int) ([]*domain.User, error) {
	rows, err := q.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at, id OFFSET $1 LIMIT $2`,
		skip, limit)
	if err != nil {
		return nil, mapError("list users", err)
	}
	users, err := scanAll(rows, scanUser)
	if err != nil {
		return nil, mapError("scan users", err)
	}
	return users, nil
}

func (r *userRepository) Create(ctx context.Context, q ports.DBTX, user *domain.User) error {
	_, err := q.Exec(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		user.ID, user.KeycloakID, user.Username, user.Email, user.FirstName, user.LastName,
		user.Roles, user.IsActive, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return mapError("create user", err)
	}

	r.logger.DebugContext(ctx, "user created", slog.String("user_id", user.ID.String()))
	return nil
}

func (r *userRepository) Update(ctx context.Context, q ports.DBTX, user *domain.User) error {
	tag, err := q.Exec(ctx, `
		UPDATE users SET
			username = $2, email = $3, first_name = $4, last_name = $5,
			roles = $6, is_active = $7, updated_at = $8
		WHERE id = $1`,
		user.ID, user.Username, user.Email, user.FirstName, user.LastName,
		user.Roles, user.IsActive, user.UpdatedAt,
	)
	if err != nil {
		return mapError("update user", err)
	}
	return expectOne("update user", tag)
}
