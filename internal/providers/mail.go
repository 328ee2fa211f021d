package providers

import (
	"context"

	gomail "gopkg.in/gomail.v2"

	"github.com/felipemarinho/ewallet/internal/logger"
)

// EmailAddress is a named recipient or sender.
type EmailAddress struct {
	Name  string
	Email string
}

// EmailData describes one outbound email.
type EmailData struct {
	Subject     string
	From        EmailAddress
	To          EmailAddress
	HTMLContent string
}

// SMTPMailProvider delivers email through an SMTP relay.
type SMTPMailProvider struct {
	dialer *gomail.Dialer
}

// NewSMTPMailProvider creates a provider backed by the given SMTP relay.
func NewSMTPMailProvider(host string, port int, username, password string) *SMTPMailProvider {
	return &SMTPMailProvider{
		dialer: gomail.NewDialer(host, port, username, password),
	}
}

// SendEmail delivers one message. gomail has no context support; the ctx
// parameter keeps the interface uniform with the other providers.
func (p *SMTPMailProvider) SendEmail(ctx context.Context, data EmailData) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(data.From.Email, data.From.Name))
	m.SetHeader("To", data.To.Email)
	m.SetHeader("Subject", data.Subject)
	m.SetBody("text/html", data.HTMLContent)

	err := p.dialer.DialAndSend(m)

	logger.Log.Infow("email send", "to", data.To.Email, "subject", data.Subject, "error", err)

	return err
}
