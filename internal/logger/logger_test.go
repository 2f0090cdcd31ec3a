package logger

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestHTTPRequest(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info", "json")

	log.HTTPRequest(RequestLog{
		Method:    "GET",
		Path:      "/api/cron/send-reminders",
		Status:    200,
		Bytes:     42,
		Duration:  15 * time.Millisecond,
		ClientIP:  "10.0.0.1",
		RequestID: "req-1",
	})

	entry := decodeLine(t, &buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/cron/send-reminders", entry["path"])
	assert.Equal(t, float64(200), entry["status"])
	assert.Equal(t, float64(42), entry["bytes"])
	assert.Equal(t, "req-1", entry["request_id"])
}

func TestHTTPRequest_LevelFollowsStatus(t *testing.T) {
	tests := []struct {
		status int
		level  string
	}{
		{204, "info"},
		{401, "warn"},
		{429, "warn"},
		{500, "error"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		log := NewWithWriter(&buf, "info", "json")
		log.HTTPRequest(RequestLog{Method: "GET", Path: "/", Status: tt.status})
		assert.Equal(t, tt.level, decodeLine(t, &buf)["level"], "status %d", tt.status)
	}
}

func TestReminderOutcome_FailedIsWarning(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "debug", "json").WithComponent("reminder")

	log.ReminderOutcome(42, "jan@example.com", "failed")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "reminder", entry["component"])
	assert.Equal(t, float64(42), entry["appointment_id"])
	assert.Equal(t, "failed", entry["status"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "error", "json")

	log.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	log.Error().Msg("kept")
	assert.NotZero(t, buf.Len())
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "loud", "json")

	log.Debug().Msg("dropped")
	assert.Zero(t, buf.Len())
	log.Info().Msg("kept")
	assert.NotZero(t, buf.Len())
}
