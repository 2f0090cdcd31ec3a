package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewReminderMetrics(reg)
	require.NoError(t, err)

	m.ObserveOutcome("sent")
	m.ObserveOutcome("sent")
	m.ObserveOutcome("skipped (invalid email)")
	m.ObserveRun("ok", 2*time.Second)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.outcomes.WithLabelValues("sent")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.outcomes.WithLabelValues("skipped (invalid email)")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.runs.WithLabelValues("ok")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.runDuration))
}

func TestNewReminderMetrics_ReusesRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewReminderMetrics(reg)
	require.NoError(t, err)
	second, err := NewReminderMetrics(reg)
	require.NoError(t, err)

	first.ObserveOutcome("failed")
	second.ObserveOutcome("failed")

	assert.Equal(t, float64(2), testutil.ToFloat64(first.outcomes.WithLabelValues("failed")))
}

func TestReminderMetrics_NilSafe(t *testing.T) {
	var m *ReminderMetrics
	assert.NotPanics(t, func() {
		m.ObserveOutcome("sent")
		m.ObserveRun("error", time.Second)
	})
}
