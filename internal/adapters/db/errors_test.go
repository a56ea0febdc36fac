package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
)

func TestMapError(t *testing.T) {
	other := errors.New("connection reset")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "no_rows_is_not_found", err: pgx.ErrNoRows, want: domain.ErrNotFound},
		{name: "wrapped_no_rows", err: fmt.Errorf("scan: %w", pgx.ErrNoRows), want: domain.ErrNotFound},
		{name: "unique_violation_is_conflict", err: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}, want: domain.ErrConflict},
		{name: "foreign_key_is_validation", err: &pgconn.PgError{Code: "23503"}, want: domain.ErrValidation},
		{name: "check_is_validation", err: &pgconn.PgError{Code: "23514"}, want: domain.ErrValidation},
		{name: "other_errors_pass_through", err: other, want: other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError("op", tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.Contains(t, got.Error(), "op: ")
		})
	}

	t.Run("nil_stays_nil", func(t *testing.T) {
		assert.NoError(t, mapError("op", nil))
	})

	t.Run("unmapped_pg_code_keeps_pg_error", func(t *testing.T) {
		got := mapError("op", &pgconn.PgError{Code: "40001"})
		var pgErr *pgconn.PgError
		assert.True(t, errors.As(got, &pgErr))
		assert.NotErrorIs(t, got, domain.ErrConflict)
	})
}

func TestExpectOne(t *testing.T) {
	assert.ErrorIs(t, expectOne("update", pgconn.NewCommandTag("UPDATE 0")), domain.ErrNotFound)
	assert.NoError(t, expectOne("update", pgconn.NewCommandTag("UPDATE 1")))
}
