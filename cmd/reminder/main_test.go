package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medsystem/medsystem/internal/model"
)

func TestNextRun(t *testing.T) {
	warsaw, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "later today",
			now:  time.Date(2026, 3, 10, 5, 0, 0, 0, time.UTC), // 06:00 Warsaw
			want: time.Date(2026, 3, 10, 7, 0, 0, 0, warsaw),
		},
		{
			name: "exactly at schedule rolls to tomorrow",
			now:  time.Date(2026, 3, 10, 7, 0, 0, 0, warsaw),
			want: time.Date(2026, 3, 11, 7, 0, 0, 0, warsaw),
		},
		{
			name: "after schedule",
			now:  time.Date(2026, 3, 10, 22, 30, 0, 0, time.UTC), // 23:30 Warsaw
			want: time.Date(2026, 3, 11, 7, 0, 0, 0, warsaw),
		},
		{
			name: "across DST change",
			now:  time.Date(2026, 3, 28, 12, 0, 0, 0, warsaw),
			want: time.Date(2026, 3, 29, 7, 0, 0, 0, warsaw),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextRun(tt.now, 7, 0, warsaw)
			assert.True(t, tt.want.Equal(got), "got %s want %s", got, tt.want)
		})
	}
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	report := &model.ReminderReport{
		Message: "Processed 1 appointments",
		Details: []model.Outcome{model.SkippedOutcome(3, model.SkipReasonInvalidEmail)},
	}
	require.NoError(t, printJSON(cmd, report))

	assert.JSONEq(t, `{"message":"Processed 1 appointments","details":[{"id":3,"status":"skipped (invalid email)"}]}`, buf.String())
}
