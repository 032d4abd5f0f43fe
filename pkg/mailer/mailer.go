// Package mailer sends plain SMTP mail.
//
// It is used to forward new contact form inquiries to the site owner. Any SMTP relay
// works; Mailtrap (smtp.mailtrap.io:2525) is convenient for development.
package mailer

import (
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strings"
)

// Config holds the SMTP connection settings.
type Config struct {
	Host string
	Port string // Defaults to 2525
	User string // Optional. When empty the relay is used without authentication.
	Pass string
	From string
}

// Mailer sends mail through a single SMTP relay.
type Mailer struct {
	cfg      Config
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// New validates cfg and returns a Mailer.
func New(cfg Config) (*Mailer, error) {
	if cfg.Host == "" {
		return nil, errors.New("SMTP host cannot be empty")
	}
	if cfg.From == "" {
		return nil, errors.New("sender email address cannot be empty")
	}
	if cfg.Port == "" {
		cfg.Port = "2525"
	}
	return &Mailer{cfg: cfg, sendMail: smtp.SendMail}, nil
}

// Send delivers a text/plain message to the given recipients. The body is never
// interpreted as markup.
func (m *Mailer) Send(to []string, subject, body string) error {
	if len(to) == 0 {
		return errors.New("recipient email address cannot be empty")
	}
	for _, rcpt := range to {
		if rcpt == "" {
			return errors.New("recipient email address cannot be empty")
		}
	}
	if subject == "" {
		return errors.New("email subject cannot be empty")
	}

	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	}

	addr := net.JoinHostPort(m.cfg.Host, m.cfg.Port)
	if err := m.sendMail(addr, auth, m.cfg.From, to, buildMessage(m.cfg.From, to, subject, body)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func buildMessage(from string, to []string, subject, body string) []byte {
	// Header values must not carry line breaks.
	subject = strings.NewReplacer("\r", " ", "\n", " ").Replace(subject)

	return []byte(fmt.Sprintf("To: %s\r\n"+
		"From: %s\r\n"+
		"Subject: %s\r\n"+
		"Content-Type: text/plain; charset=UTF-8\r\n"+
		"\r\n"+
		"%s\r\n", strings.Join(to, ", "), from, subject, body))
}
