// Package mailer provides functionality to send emails over SMTP.
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer defines the interface for sending emails.
type Mailer interface {
	Send(to, from, subject, body string) error
}

// SMTPMailer implements the Mailer interface using an SMTP server.
type SMTPMailer struct {
	dialer *gomail.Dialer
}

// NewSMTPMailerConfig contains options for creating a new SMTPMailer.
type NewSMTPMailerConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// NewSMTPMailer creates a new SMTPMailer. The connection is established
// lazily on the first Send.
func NewSMTPMailer(cfg NewSMTPMailerConfig) (*SMTPMailer, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("SMTP host cannot be empty")
	}
	if cfg.Port <= 0 {
		return nil, fmt.Errorf("SMTP port must be positive")
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}, nil
}

// Send delivers one plain-text email.
func (m *SMTPMailer) Send(to, from, subject, body string) error {
	if to == "" {
		return fmt.Errorf("recipient email address cannot be empty")
	}
	if from == "" {
		return fmt.Errorf("sender email address cannot be empty")
	}
	if subject == "" {
		return fmt.Errorf("email subject cannot be empty")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
