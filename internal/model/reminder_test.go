package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcome_Status(t *testing.T) {
	assert.Equal(t, "sent", SentOutcome(1, "jan@example.com").Status())
	assert.Equal(t, "failed", FailedOutcome(2, "jan@example.com").Status())
	assert.Equal(t, "skipped (invalid email)", SkippedOutcome(3, SkipReasonInvalidEmail).Status())
	assert.Equal(t, "skipped", SkippedOutcome(4, SkipReasonNone).Status())
}

func TestOutcome_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(SentOutcome(7, "jan@example.com"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"email":"jan@example.com","status":"sent"}`, string(data))

	data, err = json.Marshal(SkippedOutcome(8, SkipReasonInvalidEmail))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":8,"status":"skipped (invalid email)"}`, string(data))
}

func TestReminderReport_MarshalJSON(t *testing.T) {
	empty := ReminderReport{Message: "No appointments today."}
	data, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"No appointments today."}`, string(data))

	report := ReminderReport{
		Message: "Processed 2 appointments",
		Total:   2,
		Details: []Outcome{SentOutcome(1, "a@b.pl"), FailedOutcome(2, "c@d.pl")},
	}
	data, err = json.Marshal(report)
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Processed 2 appointments","details":[
		{"id":1,"email":"a@b.pl","status":"sent"},
		{"id":2,"email":"c@d.pl","status":"failed"}]}`, string(data))
	assert.Equal(t, 1, report.Count(OutcomeSent))
	assert.Equal(t, 1, report.Count(OutcomeFailed))
	assert.Equal(t, 0, report.Count(OutcomeSkipped))
}

func TestReminderCandidate_HasValidEmail(t *testing.T) {
	contact := func(s string) *string { return &s }

	cases := []struct {
		name    string
		contact *string
		want    bool
	}{
		{"missing", nil, false},
		{"empty", contact(""), false},
		{"phone number", contact("600 100 200"), false},
		{"no at sign", contact("invalid-contact"), false},
		{"email", contact("jan@example.com"), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := ReminderCandidate{Patient: Patient{Contact: tc.contact}}
			assert.Equal(t, tc.want, c.HasValidEmail())
		})
	}
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "Jan Kowalski", Patient{FirstName: "Jan", LastName: "Kowalski"}.FullName())
	assert.Equal(t, "Anna Nowak", Doctor{FirstName: "Anna", LastName: "Nowak"}.FullName())
}
