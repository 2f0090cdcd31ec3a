package email

import (
	"context"
	"fmt"

	"github.com/medsystem/medsystem/internal/logger"
)

// ReminderData is the appointment-specific part of a reminder message
type ReminderData struct {
	Time       string
	DoctorName string
}

// SendResult reports the outcome of a single reminder delivery
type SendResult struct {
	Success   bool
	MessageID string
	Error     string
}

// ReminderNotifier renders appointment reminders and hands them to a Sender.
type ReminderNotifier struct {
	sender Sender
	log    *logger.Logger
}

// NewReminderNotifier creates a new ReminderNotifier
func NewReminderNotifier(sender Sender, log *logger.Logger) *ReminderNotifier {
	return &ReminderNotifier{
		sender: sender,
		log:    log.WithComponent("reminder_notifier"),
	}
}

// SendAppointmentReminder sends one reminder to the given address. Failures,
// panics from the transport included, are reported in the result and never
// returned as errors.
func (n *ReminderNotifier) SendAppointmentReminder(ctx context.Context, to, patientName string, data ReminderData) (result SendResult) {
	defer func() {
		if r := recover(); r != nil {
			n.log.Error().Interface("panic", r).Str("to", to).Msg("email sender panicked")
			result = SendResult{Error: fmt.Sprintf("email sender panicked: %v", r)}
		}
	}()

	msg := Message{
		To:       to,
		Subject:  ReminderSubject,
		HTMLBody: ReminderEmailHTML(patientName, data),
		TextBody: ReminderEmailText(patientName, data),
	}

	messageID, err := n.sender.Send(ctx, msg)
	if err != nil {
		n.log.Error().Err(err).Str("to", to).Msg("error sending reminder email")
		return SendResult{Error: err.Error()}
	}

	n.log.Info().Str("message_id", messageID).Str("to", to).Msg("reminder email sent")
	return SendResult{Success: true, MessageID: messageID}
}
