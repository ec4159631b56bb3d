package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("loud"))
}

func TestComponentAddsField(t *testing.T) {
	var buf bytes.Buffer
	root := New(Config{Level: "info", Format: "json"}, &buf)

	dbLog := Component(root, "database")
	dbLog.Info().Msg("connected")
	dbLog.Debug().Msg("filtered out")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "database", entry["component"])
	assert.Equal(t, "connected", entry["message"])
	assert.Equal(t, "info", entry["level"])
}
