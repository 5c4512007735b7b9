package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Zhasna/Mental-Wellness-App/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapPostgresError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil passes through", nil, nil},
		{"no rows becomes not found", pgx.ErrNoRows, models.ErrNotFound},
		{"unique violation becomes conflict", &pgconn.PgError{Code: "23505"}, models.ErrConflict},
		{"foreign key violation becomes bad request", &pgconn.PgError{Code: "23503"}, models.ErrBadRequest},
		{"not null violation becomes bad request", &pgconn.PgError{Code: "23502"}, models.ErrBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapPostgresError(tt.in))
		})
	}
}

func TestMapPostgresError_UnknownErrorsPassThrough(t *testing.T) {
	unknown := fmt.Errorf("connection reset")
	assert.Equal(t, unknown, MapPostgresError(unknown))

	pgErr := &pgconn.PgError{Code: "42P01"}
	assert.Equal(t, error(pgErr), MapPostgresError(pgErr))
}

func TestMapPostgresError_WrappedNoRows(t *testing.T) {
	wrapped := fmt.Errorf("query user: %w", pgx.ErrNoRows)
	assert.True(t, errors.Is(MapPostgresError(wrapped), models.ErrNotFound))
}
