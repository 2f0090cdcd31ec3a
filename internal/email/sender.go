package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/medsystem/medsystem/internal/config"
)

var (
	// ErrNoRecipient is returned when a message has no To address
	ErrNoRecipient = errors.New("email: recipient is required")
)

// Sender is the interface that all email providers must implement.
type Sender interface {
	// Send delivers msg and returns the provider's message identifier.
	Send(ctx context.Context, msg Message) (string, error)
}

// Message represents an email message to be sent.
type Message struct {
	To       string // recipient email address
	Subject  string // email subject
	HTMLBody string // HTML email body
	TextBody string // plain-text fallback body
}

// NewSender builds the Sender selected by cfg.Provider
func NewSender(ctx context.Context, cfg config.EmailConfig) (Sender, error) {
	switch cfg.Provider {
	case "smtp", "":
		s, err := NewSMTPSender(SMTPConfig{
			Host:       cfg.SMTP.Host,
			Port:       cfg.SMTP.Port,
			Username:   cfg.SMTP.Username,
			Password:   cfg.SMTP.Password,
			From:       cfg.SMTP.From(),
			SenderName: cfg.SenderName,
			Timeout:    cfg.SMTP.Timeout,
		})
		if err != nil {
			return nil, err
		}
		return s, nil
	case "gmail":
		g := cfg.Gmail
		var (
			s   *GmailSender
			err error
		)
		if g.CredentialsJSON != "" {
			s, err = NewGmailSender(ctx, GmailConfig{
				CredentialsJSON: g.CredentialsJSON,
				SenderAddress:   g.SenderAddress,
				SenderName:      cfg.SenderName,
			})
		} else {
			s, err = NewGmailSenderWithToken(ctx, g.ClientID, g.ClientSecret, g.RefreshToken, g.SenderAddress, cfg.SenderName)
		}
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("email: unknown provider %q", cfg.Provider)
	}
}
