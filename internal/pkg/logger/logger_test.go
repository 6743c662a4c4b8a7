package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONWithService(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: LevelInfo, Format: FormatJSON, Output: &buf, Service: "hotel-api"})

	log.Info("cart checked out", "user_id", "u-1", "bookings", 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "cart checked out", entry["msg"])
	assert.Equal(t, "hotel-api", entry["service"])
	assert.Equal(t, "u-1", entry["user_id"])
	assert.EqualValues(t, 2, entry["bookings"])
}

func TestNew_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: LevelWarn, Output: &buf})

	log.Debug("noise")
	log.Info("still noise")
	assert.Zero(t, buf.Len())

	log.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestWith_KeepsAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Format: FormatText, Output: &buf}).With("component", "checkout")

	log.Info("hello")
	assert.Contains(t, buf.String(), "component=checkout")
}
