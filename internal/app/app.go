// Package app wires the reminder job from configuration. Both the HTTP
// server and the reminder CLI build their service here.
package app

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/medsystem/medsystem/internal/config"
	"github.com/medsystem/medsystem/internal/database"
	"github.com/medsystem/medsystem/internal/email"
	"github.com/medsystem/medsystem/internal/locale"
	"github.com/medsystem/medsystem/internal/logger"
	"github.com/medsystem/medsystem/internal/metrics"
	"github.com/medsystem/medsystem/internal/repository"
	"github.com/medsystem/medsystem/internal/service"
)

// NewReminderService builds the reminder batch job on top of an open
// database connection. reg may be nil to skip metrics.
func NewReminderService(ctx context.Context, cfg *config.Config, db *database.Postgres, log *logger.Logger, reg prometheus.Registerer) (*service.ReminderService, error) {
	formatter, err := locale.NewTimeFormatter(cfg.Reminder.Locale, cfg.Reminder.TimeZone)
	if err != nil {
		return nil, err
	}

	sender, err := email.NewSender(ctx, cfg.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize email sender: %w", err)
	}

	opts := []service.ReminderServiceOption{}
	if reg != nil {
		m, err := metrics.NewReminderMetrics(reg)
		if err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		opts = append(opts, service.WithMetrics(m))
	}

	return service.NewReminderService(
		repository.NewAppointmentRepository(db),
		email.NewReminderNotifier(sender, log),
		formatter,
		cfg.Reminder.CancelledStatus,
		log,
		opts...,
	), nil
}
