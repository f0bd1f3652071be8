package db

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestErrorCode(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: UniqueViolation})
	require.Equal(t, UniqueViolation, ErrorCode(err))
	require.Empty(t, ErrorCode(fmt.Errorf("plain")))
	require.Empty(t, ErrorCode(nil))
}

func TestIsNoRows(t *testing.T) {
	require.True(t, IsNoRows(fmt.Errorf("get: %w", pgx.ErrNoRows)))
	require.False(t, IsNoRows(&pgconn.PgError{Code: CheckViolation}))
}
