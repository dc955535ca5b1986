package logutils

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "bingo.log")

	l, closer, err := New("info", path)
	require.NoError(t, err)

	l.Debug().Msg("hidden")
	l.Info().Str("board", "b1").Msg("saved")
	closer()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "saved", entry["message"])
	assert.Equal(t, "b1", entry["board"])
	assert.Contains(t, entry, "time")
	assert.NotContains(t, string(data), "hidden")
}

func TestNew_BadLevel(t *testing.T) {
	_, closer, err := New("loud", "")
	require.Error(t, err)
	assert.NotNil(t, closer)
}

func TestNewWith(t *testing.T) {
	var buf bytes.Buffer
	l := NewWith(&buf, zerolog.WarnLevel)

	l.Info().Msg("skip")
	l.Warn().Msg("keep")

	assert.NotContains(t, buf.String(), "skip")
	assert.Contains(t, buf.String(), `"message":"keep"`)
}
