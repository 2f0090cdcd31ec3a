package model

import (
	"strings"
	"time"
)

// AppointmentStatus represents the lifecycle state of an appointment.
// Values are the literals stored by the clinic front office.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "Zaplanowana"
	AppointmentStatusCompleted AppointmentStatus = "Zakończona"
	AppointmentStatusCancelled AppointmentStatus = "Anulowana"
)

// Appointment represents a visit booked between a patient and a doctor
type Appointment struct {
	ID        int64             `json:"id"`
	Date      time.Time         `json:"date"`
	Status    AppointmentStatus `json:"status"`
	PatientID int64             `json:"patient_id"`
	DoctorID  int64             `json:"doctor_id"`
}

// Patient represents a clinic patient
type Patient struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	// Contact holds the patient's email address when one was given
	Contact *string `json:"contact,omitempty"`
}

// FullName returns "first last"
func (p Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Doctor represents a clinic doctor
type Doctor struct {
	ID             int64   `json:"id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Specialization *string `json:"specialization"`
	Email          *string `json:"email"`
}

// FullName returns "first last"
func (d Doctor) FullName() string {
	return d.FirstName + " " + d.LastName
}

// ReminderCandidate is one eligible appointment joined with the people it
// concerns, as returned by the daily reminder query.
type ReminderCandidate struct {
	AppointmentID int64
	Date          time.Time
	Patient       Patient
	Doctor        Doctor
}

// Email returns the contact address, or "" when none is stored
func (c ReminderCandidate) Email() string {
	if c.Patient.Contact == nil {
		return ""
	}
	return *c.Patient.Contact
}

// HasValidEmail reports whether the contact can be used as a recipient
func (c ReminderCandidate) HasValidEmail() bool {
	return strings.Contains(c.Email(), "@")
}
