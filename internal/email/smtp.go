package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
)

// SMTPConfig holds the configuration for the SMTP email sender.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	// From is the envelope and header sender address.
	From string
	// SenderName is the display name for the sender.
	SenderName string
	Timeout    time.Duration
	// TLSConfig overrides the client TLS settings; nil uses ServerName=Host.
	TLSConfig *tls.Config
}

// SMTPSender implements Sender over a plain SMTP relay.
// Port 465 uses implicit TLS, any other port upgrades with STARTTLS when the
// server offers it.
type SMTPSender struct {
	cfg SMTPConfig
	now func() time.Time
}

// NewSMTPSender creates a new SMTPSender.
func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp: host is required")
	}
	if cfg.Port <= 0 {
		return nil, fmt.Errorf("smtp: invalid port %d", cfg.Port)
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("smtp: sender address is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &SMTPSender{cfg: cfg, now: time.Now}, nil
}

func (s *SMTPSender) clientOptions() []mail.Option {
	tlsConfig := s.cfg.TLSConfig
	if tlsConfig == nil {
		tlsConfig = &tls.Config{ServerName: s.cfg.Host}
	}

	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithTimeout(s.cfg.Timeout),
		mail.WithTLSConfig(tlsConfig),
	}
	if s.cfg.Port == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	if s.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}
	return opts
}

// Send sends an email through the SMTP relay and returns its Message-ID.
func (s *SMTPSender) Send(ctx context.Context, msg Message) (string, error) {
	if msg.To == "" {
		return "", ErrNoRecipient
	}

	m, messageID, err := buildMsg(s.cfg.SenderName, s.cfg.From, msg, s.now())
	if err != nil {
		return "", err
	}

	client, err := mail.NewClient(s.cfg.Host, s.clientOptions()...)
	if err != nil {
		return "", fmt.Errorf("smtp: invalid client settings: %w", err)
	}

	if err := client.DialWithContext(ctx); err != nil {
		return "", fmt.Errorf("smtp: failed to connect: %w", err)
	}
	defer client.Close()

	if err := client.Send(m); err != nil {
		return "", fmt.Errorf("smtp: delivery failed: %w", err)
	}
	return messageID, nil
}
