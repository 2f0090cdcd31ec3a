package email

import (
	"fmt"
	"html"
)

// ReminderSubject is the subject line of the appointment reminder
const ReminderSubject = "Przypomnienie o wizycie - System Medyczny"

// ReminderEmailHTML returns the HTML body for an appointment reminder.
func ReminderEmailHTML(patientName string, data ReminderData) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #eee; border-radius: 5px;">
  <h2 style="color: #2c3e50;">Przypomnienie o wizycie</h2>
  <p>Dzień dobry <strong>%s</strong>,</p>
  <p>Przypominamy o Twojej dzisiejszej wizycie.</p>
  <div style="background-color: #f9f9f9; padding: 15px; border-left: 4px solid #3498db; margin: 20px 0;">
    <p style="margin: 5px 0;"><strong>Godzina:</strong> %s</p>
    <p style="margin: 5px 0;"><strong>Lekarz:</strong> %s</p>
  </div>
  <p>Prosimy o punktualne przybycie.</p>
  <hr style="border: none; border-top: 1px solid #eee; margin-top: 30px;">
  <p style="font-size: 12px; color: #7f8c8d;">Wiadomość wygenerowana automatycznie. Prosimy nie odpowiadać na tego maila.</p>
</div>`,
		html.EscapeString(patientName),
		html.EscapeString(data.Time),
		html.EscapeString(data.DoctorName),
	)
}

// ReminderEmailText returns the plain-text body for an appointment reminder.
func ReminderEmailText(patientName string, data ReminderData) string {
	return fmt.Sprintf(`Dzień dobry %s,

Przypominamy o dzisiejszej wizycie zaplanowanej na godzinę %s.
Lekarz: %s

Pozdrawiamy,
Twoja Przychodnia`, patientName, data.Time, data.DoctorName)
}
