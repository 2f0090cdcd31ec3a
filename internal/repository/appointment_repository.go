package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/medsystem/medsystem/internal/database"
	"github.com/medsystem/medsystem/internal/model"
)

// AppointmentRepository reads appointments together with their patient and doctor
type AppointmentRepository struct {
	db *database.Postgres
}

// NewAppointmentRepository creates a new AppointmentRepository
func NewAppointmentRepository(db *database.Postgres) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// ListReminderCandidates returns the appointments that fall on day's calendar
// date in day's location and whose status is not cancelledStatus.
func (r *AppointmentRepository) ListReminderCandidates(ctx context.Context, day time.Time, cancelledStatus string) ([]model.ReminderCandidate, error) {
	if cancelledStatus == "" {
		return nil, fmt.Errorf("%w: cancelled status is empty", ErrInvalidInput)
	}

	start, end := DayBounds(day)
	query := `
		SELECT a.id, a.date,
		       p.id, p.first_name, p.last_name, p.contact,
		       d.id, d.first_name, d.last_name
		FROM appointments a
		JOIN patients p ON a.patient_id = p.id
		JOIN doctors d ON a.doctor_id = d.id
		WHERE a.date >= $1 AND a.date < $2
		  AND a.status != $3
		ORDER BY a.date, a.id
	`
	rows, err := r.db.QueryContext(ctx, query, start, end, cancelledStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to query today's appointments: %w", err)
	}
	defer rows.Close()

	var candidates []model.ReminderCandidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate appointments: %w", err)
	}

	return candidates, nil
}

// DayBounds returns local midnight of day's date and the following midnight
// in day's location. The span is 23 or 25 hours on DST transition days.
func DayBounds(day time.Time) (start, end time.Time) {
	y, m, d := day.Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, day.Location())
	end = time.Date(y, m, d+1, 0, 0, 0, 0, day.Location())
	return start, end
}

func scanCandidate(rows *sql.Rows) (*model.ReminderCandidate, error) {
	var c model.ReminderCandidate
	var contact sql.NullString

	err := rows.Scan(
		&c.AppointmentID,
		&c.Date,
		&c.Patient.ID,
		&c.Patient.FirstName,
		&c.Patient.LastName,
		&contact,
		&c.Doctor.ID,
		&c.Doctor.FirstName,
		&c.Doctor.LastName,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan appointment: %w", err)
	}

	if contact.Valid {
		c.Patient.Contact = &contact.String
	}
	return &c, nil
}
