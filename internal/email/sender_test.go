package email

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medsystem/medsystem/internal/config"
)

func TestNewSender_SMTP(t *testing.T) {
	s, err := NewSender(context.Background(), config.EmailConfig{
		Provider:   "smtp",
		SenderName: "System Medyczny",
		SMTP:       config.SMTPConfig{Host: "smtp.example.com", Port: 465, Username: "noreply@example.com"},
	})
	require.NoError(t, err)

	smtpSender, ok := s.(*SMTPSender)
	require.True(t, ok)
	assert.Equal(t, "noreply@example.com", smtpSender.cfg.From)
	assert.Equal(t, "System Medyczny", smtpSender.cfg.SenderName)
}

func TestNewSender_UnknownProvider(t *testing.T) {
	_, err := NewSender(context.Background(), config.EmailConfig{Provider: "fax"})
	assert.ErrorContains(t, err, `unknown provider "fax"`)
}

func TestNewSender_GmailRequiresSender(t *testing.T) {
	_, err := NewSender(context.Background(), config.EmailConfig{
		Provider: "gmail",
		Gmail:    config.GmailEmailConfig{RefreshToken: "token"},
	})
	assert.ErrorContains(t, err, "sender address is required")
}
