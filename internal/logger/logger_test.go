package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductionLoggerWritesSeverity(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "production")

	log.Debug().Msg("hidden")
	log.Info().Str("bucket", "teachers").Msg("signed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["severity"])
	assert.Equal(t, "teachers", entry["bucket"])
	assert.Equal(t, "kizuna", entry["app"])
	assert.NotContains(t, buf.String(), "hidden")
}
