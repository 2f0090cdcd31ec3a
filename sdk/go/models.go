package medsystem

// ReminderReport is the result of one reminder batch.
type ReminderReport struct {
	Message string           `json:"message"`
	Details []ReminderDetail `json:"details,omitempty"`
}

// ReminderDetail is the outcome for one appointment. Status is "sent",
// "failed" or "skipped (invalid email)".
type ReminderDetail struct {
	ID     int64  `json:"id"`
	Email  string `json:"email,omitempty"`
	Status string `json:"status"`
}

// Reminder statuses reported by the server.
const (
	StatusSent                = "sent"
	StatusFailed              = "failed"
	StatusSkippedInvalidEmail = "skipped (invalid email)"
)

// Count returns how many details have the given status.
func (r *ReminderReport) Count(status string) int {
	n := 0
	for _, d := range r.Details {
		if d.Status == status {
			n++
		}
	}
	return n
}

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status   string            `json:"status"`
	Version  string            `json:"version"`
	Services map[string]string `json:"services"`
}
