package email

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailConfig holds the configuration for the Gmail email sender.
type GmailConfig struct {
	// CredentialsJSON is the service account credentials JSON with
	// domain-wide delegation.
	CredentialsJSON string
	// SenderAddress is the mailbox emails are sent from.
	SenderAddress string
	// SenderName is the display name for the sender.
	SenderName string
}

// GmailSender implements Sender using the Gmail API.
type GmailSender struct {
	service       *gmail.Service
	senderAddress string
	senderName    string
}

// NewGmailSender creates a GmailSender that impersonates the sender mailbox
// through a service account.
func NewGmailSender(ctx context.Context, cfg GmailConfig) (*GmailSender, error) {
	if cfg.CredentialsJSON == "" {
		return nil, fmt.Errorf("gmail: credentials JSON is required")
	}
	if cfg.SenderAddress == "" {
		return nil, fmt.Errorf("gmail: sender address is required")
	}

	jwtConfig, err := google.JWTConfigFromJSON([]byte(cfg.CredentialsJSON), gmail.GmailSendScope)
	if err != nil {
		return nil, fmt.Errorf("gmail: failed to parse credentials: %w", err)
	}
	jwtConfig.Subject = cfg.SenderAddress

	svc, err := gmail.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("gmail: failed to create service: %w", err)
	}

	return &GmailSender{
		service:       svc,
		senderAddress: cfg.SenderAddress,
		senderName:    cfg.SenderName,
	}, nil
}

// NewGmailSenderWithToken creates a GmailSender using OAuth2 client credentials + refresh token.
// This is useful for a clinic mailbox on a personal Gmail account.
func NewGmailSenderWithToken(ctx context.Context, clientID, clientSecret, refreshToken, senderAddress, senderName string) (*GmailSender, error) {
	if senderAddress == "" {
		return nil, fmt.Errorf("gmail: sender address is required")
	}
	if refreshToken == "" {
		return nil, fmt.Errorf("gmail: refresh token is required")
	}

	oauthCfg := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gmail.GmailSendScope},
	}

	client := oauthCfg.Client(ctx, &oauth2.Token{RefreshToken: refreshToken})

	svc, err := gmail.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("gmail: failed to create service: %w", err)
	}

	return &GmailSender{
		service:       svc,
		senderAddress: senderAddress,
		senderName:    senderName,
	}, nil
}

// Send sends an email via the Gmail API and returns the Gmail message id.
func (g *GmailSender) Send(ctx context.Context, msg Message) (string, error) {
	if msg.To == "" {
		return "", ErrNoRecipient
	}

	m, _, err := buildMsg(g.senderName, g.senderAddress, msg, time.Now())
	if err != nil {
		return "", err
	}
	raw, err := renderMsg(m)
	if err != nil {
		return "", err
	}

	sent, err := g.service.Users.Messages.Send("me", &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString(raw),
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("gmail: failed to send email: %w", err)
	}

	return sent.Id, nil
}
