package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"travel-service/config"
)

// Mailer is the outbound mail transport. Kept as an interface so the
// notification worker can be tested without an SMTP server.
type Mailer interface {
	Send(ctx context.Context, to string, subject string, body string) error
}

type smtpMailer struct {
	cfg *config.MailConfig
}

func New(cfg *config.MailConfig) Mailer {
	return &smtpMailer{cfg: cfg}
}

func (m *smtpMailer) Send(ctx context.Context, to string, subject string, body string) error {
	addr := fmt.Sprintf("%s:%s", m.cfg.Host, m.cfg.Port)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		m.cfg.From, to, subject, body,
	))

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	return smtp.SendMail(addr, auth, m.cfg.From, []string{to}, msg)
}
