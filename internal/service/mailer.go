package service

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"dental-clinic-service/config"
)

// Mailer sends notification emails. Delivery is best effort: callers log
// failures and never propagate them.
type Mailer interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

type smtpMailer struct {
	config config.SMTPConfig
}

func NewMailer(cfg config.SMTPConfig) Mailer {
	return &smtpMailer{config: cfg}
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, text, html string) error {
	body := text
	contentType := "text/plain; charset=utf-8"
	if html != "" {
		body = html
		contentType = "text/html; charset=utf-8"
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.config.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	fmt.Fprintf(&msg, "MIME-Version: 1.0\r\nContent-Type: %s\r\n\r\n", contentType)
	msg.WriteString(body)

	addr := m.config.Host + ":" + m.config.Port
	var auth smtp.Auth
	if m.config.User != "" {
		auth = smtp.PlainAuth("", m.config.User, m.config.Password, m.config.Host)
	}

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, m.config.From, []string{to}, []byte(msg.String()))
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
