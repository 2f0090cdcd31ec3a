package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/medsystem/medsystem/internal/email"
	"github.com/medsystem/medsystem/internal/locale"
	"github.com/medsystem/medsystem/internal/logger"
	"github.com/medsystem/medsystem/internal/metrics"
	"github.com/medsystem/medsystem/internal/model"
)

// Reminder run errors
var (
	ErrStoreUnavailable = errors.New("reminder store unavailable")
)

// StoreError reports a failed appointment lookup. It matches
// ErrStoreUnavailable under errors.Is.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", ErrStoreUnavailable, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

// Cause returns the message of the innermost error, the text the data store
// itself produced, without any wrapping added on the way up.
func (e *StoreError) Cause() string {
	err := e.Err
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}

const (
	msgNoAppointments = "No appointments today."
	msgProcessed      = "Processed %d appointments"
)

// CandidateLister loads the appointments eligible for a reminder on a day.
type CandidateLister interface {
	ListReminderCandidates(ctx context.Context, day time.Time, cancelledStatus string) ([]model.ReminderCandidate, error)
}

// Notifier delivers one reminder and reports the result without erroring.
type Notifier interface {
	SendAppointmentReminder(ctx context.Context, to, patientName string, data email.ReminderData) email.SendResult
}

// ReminderService runs the daily appointment reminder batch.
type ReminderService struct {
	store           CandidateLister
	notifier        Notifier
	formatter       *locale.TimeFormatter
	metrics         *metrics.ReminderMetrics
	cancelledStatus string
	now             func() time.Time
	log             *logger.Logger
}

// ReminderServiceOption customizes a ReminderService.
type ReminderServiceOption func(*ReminderService)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) ReminderServiceOption {
	return func(s *ReminderService) {
		s.now = now
	}
}

// WithMetrics records outcomes and run timings.
func WithMetrics(m *metrics.ReminderMetrics) ReminderServiceOption {
	return func(s *ReminderService) {
		s.metrics = m
	}
}

// NewReminderService creates a new ReminderService.
func NewReminderService(
	store CandidateLister,
	notifier Notifier,
	formatter *locale.TimeFormatter,
	cancelledStatus string,
	log *logger.Logger,
	opts ...ReminderServiceOption,
) *ReminderService {
	s := &ReminderService{
		store:           store,
		notifier:        notifier,
		formatter:       formatter,
		cancelledStatus: cancelledStatus,
		now:             time.Now,
		log:             log.WithComponent("reminder"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SendDailyReminders sends one reminder per non-cancelled appointment on
// today's date. Appointments are processed one at a time in store order.
// Nothing records that a reminder went out, so calling this twice on the
// same day sends every reminder twice.
func (s *ReminderService) SendDailyReminders(ctx context.Context) (*model.ReminderReport, error) {
	start := time.Now()
	today := s.now().In(s.formatter.Location())

	candidates, err := s.store.ListReminderCandidates(ctx, today, s.cancelledStatus)
	if err != nil {
		s.metrics.ObserveRun("error", time.Since(start))
		s.log.Error().Err(err).Str("day", today.Format(time.DateOnly)).Msg("failed to load appointments")
		return nil, &StoreError{Err: err}
	}

	if len(candidates) == 0 {
		s.metrics.ObserveRun("ok", time.Since(start))
		s.log.Info().Str("day", today.Format(time.DateOnly)).Msg("no appointments today")
		return &model.ReminderReport{Message: msgNoAppointments}, nil
	}

	report := &model.ReminderReport{
		Message: fmt.Sprintf(msgProcessed, len(candidates)),
		Total:   len(candidates),
		Details: make([]model.Outcome, 0, len(candidates)),
	}

	for _, c := range candidates {
		outcome := s.remind(ctx, c)
		report.Details = append(report.Details, outcome)

		s.metrics.ObserveOutcome(outcome.Status())
		s.log.ReminderOutcome(outcome.AppointmentID, outcome.Email, outcome.Status())
	}

	s.metrics.ObserveRun("ok", time.Since(start))
	s.log.Info().
		Int("total", report.Total).
		Int("sent", report.Count(model.OutcomeSent)).
		Int("failed", report.Count(model.OutcomeFailed)).
		Int("skipped", report.Count(model.OutcomeSkipped)).
		Dur("duration", time.Since(start)).
		Msg("reminder run finished")

	return report, nil
}

func (s *ReminderService) remind(ctx context.Context, c model.ReminderCandidate) model.Outcome {
	if !c.HasValidEmail() {
		return model.SkippedOutcome(c.AppointmentID, model.SkipReasonInvalidEmail)
	}

	to := c.Email()
	result := s.notifier.SendAppointmentReminder(ctx, to, c.Patient.FullName(), email.ReminderData{
		Time:       s.formatter.Clock(c.Date),
		DoctorName: c.Doctor.FullName(),
	})
	if !result.Success {
		return model.FailedOutcome(c.AppointmentID, to)
	}
	return model.SentOutcome(c.AppointmentID, to)
}
