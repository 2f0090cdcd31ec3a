package model

import (
	"encoding/json"
	"fmt"
)

// OutcomeKind is the closed set of results a reminder attempt can have
type OutcomeKind int

const (
	OutcomeSent OutcomeKind = iota + 1
	OutcomeFailed
	OutcomeSkipped
)

// String returns the metric label for the kind
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSent:
		return "sent"
	case OutcomeFailed:
		return "failed"
	case OutcomeSkipped:
		return "skipped"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// SkipReason explains why no delivery was attempted
type SkipReason int

const (
	SkipReasonNone SkipReason = iota
	SkipReasonInvalidEmail
)

func (r SkipReason) String() string {
	switch r {
	case SkipReasonNone:
		return ""
	case SkipReasonInvalidEmail:
		return "invalid email"
	default:
		return fmt.Sprintf("SkipReason(%d)", int(r))
	}
}

// Outcome is the per-appointment result of a reminder run
type Outcome struct {
	AppointmentID int64
	// Email is set only when delivery was attempted
	Email  string
	Kind   OutcomeKind
	Reason SkipReason
}

// SentOutcome records a delivered reminder
func SentOutcome(appointmentID int64, email string) Outcome {
	return Outcome{AppointmentID: appointmentID, Email: email, Kind: OutcomeSent}
}

// FailedOutcome records a delivery the transport rejected
func FailedOutcome(appointmentID int64, email string) Outcome {
	return Outcome{AppointmentID: appointmentID, Email: email, Kind: OutcomeFailed}
}

// SkippedOutcome records an appointment for which nothing was sent
func SkippedOutcome(appointmentID int64, reason SkipReason) Outcome {
	return Outcome{AppointmentID: appointmentID, Kind: OutcomeSkipped, Reason: reason}
}

// Status renders the wire tag: "sent", "failed" or "skipped (<reason>)"
func (o Outcome) Status() string {
	switch o.Kind {
	case OutcomeSent, OutcomeFailed:
		return o.Kind.String()
	case OutcomeSkipped:
		if o.Reason == SkipReasonNone {
			return "skipped"
		}
		return fmt.Sprintf("skipped (%s)", o.Reason)
	default:
		return o.Kind.String()
	}
}

type outcomeJSON struct {
	ID     int64  `json:"id"`
	Email  string `json:"email,omitempty"`
	Status string `json:"status"`
}

// MarshalJSON encodes the outcome as {id, email?, status}
func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(outcomeJSON{
		ID:     o.AppointmentID,
		Email:  o.Email,
		Status: o.Status(),
	})
}

// ReminderReport is the aggregate result of one reminder run
type ReminderReport struct {
	Message string `json:"message"`
	// Total counts every row the query returned, skipped and failed included
	Total   int       `json:"-"`
	Details []Outcome `json:"details,omitempty"`
}

// Count returns how many outcomes have the given kind
func (r *ReminderReport) Count(kind OutcomeKind) int {
	n := 0
	for _, o := range r.Details {
		if o.Kind == kind {
			n++
		}
	}
	return n
}
