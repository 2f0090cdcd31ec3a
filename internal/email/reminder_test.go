package email

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medsystem/medsystem/internal/logger"
)

type stubSender struct {
	messages []Message
	id       string
	err      error
	panicVal interface{}
}

func (s *stubSender) Send(_ context.Context, msg Message) (string, error) {
	if s.panicVal != nil {
		panic(s.panicVal)
	}
	s.messages = append(s.messages, msg)
	return s.id, s.err
}

func TestSendAppointmentReminder_Success(t *testing.T) {
	sender := &stubSender{id: "<abc@example.com>"}
	n := NewReminderNotifier(sender, logger.Nop())

	res := n.SendAppointmentReminder(context.Background(), "jan@example.com", "Jan Kowalski",
		ReminderData{Time: "10:00", DoctorName: "Anna Nowak"})

	assert.Equal(t, SendResult{Success: true, MessageID: "<abc@example.com>"}, res)
	require.Len(t, sender.messages, 1)

	msg := sender.messages[0]
	assert.Equal(t, "jan@example.com", msg.To)
	assert.Equal(t, "Przypomnienie o wizycie - System Medyczny", msg.Subject)
	assert.Contains(t, msg.TextBody, "Dzień dobry Jan Kowalski,")
	assert.Contains(t, msg.TextBody, "zaplanowanej na godzinę 10:00.")
	assert.Contains(t, msg.HTMLBody, "Dzień dobry <strong>Jan Kowalski</strong>")
	assert.Contains(t, msg.HTMLBody, "<strong>Godzina:</strong> 10:00")
	assert.Contains(t, msg.HTMLBody, "<strong>Lekarz:</strong> Anna Nowak")
}

func TestSendAppointmentReminder_Failure(t *testing.T) {
	sender := &stubSender{err: errors.New("550 mailbox unavailable")}
	n := NewReminderNotifier(sender, logger.Nop())

	res := n.SendAppointmentReminder(context.Background(), "jan@example.com", "Jan Kowalski", ReminderData{})

	assert.False(t, res.Success)
	assert.Empty(t, res.MessageID)
	assert.Equal(t, "550 mailbox unavailable", res.Error)
	assert.Len(t, sender.messages, 1)
}

func TestSendAppointmentReminder_PanicIsContained(t *testing.T) {
	sender := &stubSender{panicVal: "nil transport"}
	n := NewReminderNotifier(sender, logger.Nop())

	var res SendResult
	assert.NotPanics(t, func() {
		res = n.SendAppointmentReminder(context.Background(), "jan@example.com", "Jan Kowalski", ReminderData{})
	})
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "nil transport")
}

func TestReminderEmailHTML_EscapesNames(t *testing.T) {
	body := ReminderEmailHTML("<script>x</script>", ReminderData{Time: "10:00", DoctorName: "A & B"})
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.Contains(t, body, "A &amp; B")
}
