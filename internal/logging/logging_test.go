package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("warn", FormatJSON, &buf)
	require.NoError(t, err)

	l.Info().Msg("dropped")
	c := Component(l, "verify")
	c.Warn().Str("backend", "sse4").Msg("kept")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Equal(t, "warn", rec["level"])
	assert.Equal(t, "verify", rec["component"])
	assert.Equal(t, "sse4", rec["backend"])
	assert.Equal(t, "kept", rec["message"])
}

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("", FormatConsole, &buf)
	require.NoError(t, err)
	l.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestInvalid(t *testing.T) {
	_, err := New("loud", FormatJSON, &bytes.Buffer{})
	assert.Error(t, err)
	_, err = New("info", "xml", &bytes.Buffer{})
	assert.Error(t, err)
}
