package locale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestClock_PolishWarsaw(t *testing.T) {
	f, err := NewTimeFormatter("pl-PL", "Europe/Warsaw")
	require.NoError(t, err)

	// 09:00 UTC is 10:00 in Warsaw during winter time
	at := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "10:00", f.Clock(at))
	assert.Equal(t, language.Polish, f.Tag())
	assert.Equal(t, "Europe/Warsaw", f.Location().String())
}

func TestClock_Layouts(t *testing.T) {
	at := time.Date(2026, 7, 1, 14, 5, 0, 0, time.UTC)

	tests := []struct {
		locale string
		want   string
	}{
		{"pl", "14:05"},
		{"de-DE", "14:05"},
		{"en-GB", "14:05"},
		{"en-US", "2:05 PM"},
		{"fr-FR", "14:05"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			f, err := NewTimeFormatter(tt.locale, "UTC")
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Clock(at))
		})
	}
}

func TestNewTimeFormatter_Errors(t *testing.T) {
	_, err := NewTimeFormatter("not a tag!", "UTC")
	assert.ErrorContains(t, err, "invalid tag")

	_, err = NewTimeFormatter("pl-PL", "Mars/Olympus")
	assert.ErrorContains(t, err, "invalid time zone")
}
