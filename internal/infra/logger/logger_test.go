package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriterFields(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter(&buf, "shopcenter", zerolog.WarnLevel)

	log.Info().Msg("dropped")
	require.Zero(t, buf.Len())

	log.Warn().Str("path", "/products").Msg("slow")
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "shopcenter", line["service"])
	require.Equal(t, "warn", line["level"])
	require.Equal(t, "/products", line["path"])
	require.Contains(t, line, "time")
}

func TestNewFallsBackToInfo(t *testing.T) {
	require.Equal(t, zerolog.InfoLevel, New("svc", "not-a-level").GetLevel())
	require.Equal(t, zerolog.InfoLevel, New("svc", "").GetLevel())
	require.Equal(t, zerolog.DebugLevel, New("svc", "DEBUG").GetLevel())
}
