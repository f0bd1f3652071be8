package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testHashKey = "0123456789abcdef0123456789abcdef"

func TestNewManagerRejectsShortKey(t *testing.T) {
	_, err := NewManager("adminsession", "short", time.Hour)
	require.Error(t, err)
}

func TestEncodeDecode(t *testing.T) {
	m, err := NewManager("adminsession", testHashKey, time.Hour)
	require.NoError(t, err)

	value, s, err := m.Encode("admin@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, value)
	require.Equal(t, "admin@example.com", s.Email)

	decoded, err := m.Decode(value)
	require.NoError(t, err)
	require.Equal(t, s.Email, decoded.Email)
	require.WithinDuration(t, s.ExpiresAt, decoded.ExpiresAt, time.Second)
}

func TestDecodeRejectsTampered(t *testing.T) {
	m, err := NewManager("adminsession", testHashKey, time.Hour)
	require.NoError(t, err)
	other, err := NewManager("adminsession", "fedcba9876543210fedcba9876543210", time.Hour)
	require.NoError(t, err)

	value, _, err := other.Encode("admin@example.com")
	require.NoError(t, err)

	_, err = m.Decode(value)
	require.ErrorIs(t, err, ErrInvalidSession)

	_, err = m.Decode("garbage")
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestDecodeExpired(t *testing.T) {
	m, err := NewManager("adminsession", testHashKey, time.Hour)
	require.NoError(t, err)

	value, _, err := m.Encode("admin@example.com")
	require.NoError(t, err)

	m.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = m.Decode(value)
	require.ErrorIs(t, err, ErrExpiredSession)
}
