// Package metrics holds the Prometheus collectors for reminder runs.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "medsystem"

// ReminderMetrics reports per-appointment outcomes and whole-run results.
type ReminderMetrics struct {
	outcomes    *prometheus.CounterVec
	runs        *prometheus.CounterVec
	runDuration prometheus.Histogram
}

// NewReminderMetrics registers the reminder collectors with reg. Collectors
// already registered under the same name are reused, so several servers or
// tests may share one registry.
func NewReminderMetrics(reg prometheus.Registerer) (*ReminderMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reminder_outcomes_total",
		Help:      "Appointment reminders processed, by outcome.",
	}, []string{"status"})
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reminder_runs_total",
		Help:      "Reminder batch runs, by result.",
	}, []string{"result"})
	runDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "reminder_run_duration_seconds",
		Help:      "Wall time of one reminder batch run.",
		Buckets:   []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 300},
	})

	var err error
	if outcomes, err = register(reg, outcomes); err != nil {
		return nil, err
	}
	if runs, err = register(reg, runs); err != nil {
		return nil, err
	}
	if runDuration, err = register(reg, runDuration); err != nil {
		return nil, err
	}

	return &ReminderMetrics{
		outcomes:    outcomes,
		runs:        runs,
		runDuration: runDuration,
	}, nil
}

// MustNewReminderMetrics is NewReminderMetrics that panics on error.
func MustNewReminderMetrics(reg prometheus.Registerer) *ReminderMetrics {
	m, err := NewReminderMetrics(reg)
	if err != nil {
		panic(err)
	}
	return m
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// ObserveOutcome counts one processed appointment.
func (m *ReminderMetrics) ObserveOutcome(status string) {
	if m == nil {
		return
	}
	m.outcomes.WithLabelValues(status).Inc()
}

// ObserveRun records a finished run. result is "ok" or "error".
func (m *ReminderMetrics) ObserveRun(result string, d time.Duration) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(result).Inc()
	m.runDuration.Observe(d.Seconds())
}
