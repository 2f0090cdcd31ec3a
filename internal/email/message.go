package email

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wneessen/go-mail"
)

// newMessageID returns an RFC 5322 Message-ID value in the sender's domain,
// without the surrounding angle brackets.
func newMessageID(from string) string {
	domain := "localhost"
	if at := strings.LastIndex(from, "@"); at >= 0 && at < len(from)-1 {
		domain = from[at+1:]
	}
	return uuid.NewString() + "@" + domain
}

// buildMsg converts msg into a go-mail message. It returns the message and
// its Message-ID header value. Bodies use quoted-printable UTF-8 so Polish
// diacritics survive 7-bit relays.
func buildMsg(senderName, senderAddress string, msg Message, now time.Time) (*mail.Msg, string, error) {
	m := mail.NewMsg(mail.WithNoDefaultUserAgent(), mail.WithEncoding(mail.EncodingQP), mail.WithCharset(mail.CharsetUTF8))

	var err error
	if senderName != "" {
		err = m.FromFormat(senderName, senderAddress)
	} else {
		err = m.From(senderAddress)
	}
	if err != nil {
		return nil, "", fmt.Errorf("email: invalid sender %q: %w", senderAddress, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, "", fmt.Errorf("email: invalid recipient %q: %w", msg.To, err)
	}

	m.Subject(msg.Subject)
	m.SetDateWithValue(now)

	id := newMessageID(senderAddress)
	m.SetMessageIDWithValue(id)

	switch {
	case msg.HTMLBody != "" && msg.TextBody != "":
		m.SetBodyString(mail.TypeTextPlain, msg.TextBody)
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTMLBody)
	case msg.HTMLBody != "":
		m.SetBodyString(mail.TypeTextHTML, msg.HTMLBody)
	default:
		m.SetBodyString(mail.TypeTextPlain, msg.TextBody)
	}

	return m, "<" + id + ">", nil
}

// renderMsg writes m in RFC 5322 wire format
func renderMsg(m *mail.Msg) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("email: failed to render message: %w", err)
	}
	return buf.Bytes(), nil
}
