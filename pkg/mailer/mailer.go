package mailer

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/kgex/bigbbe/config"
)

// Sender delivers transactional email. Services depend on this interface so
// tests can substitute a recorder.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

// SMTPSender sends mail through the configured SMTP relay.
type SMTPSender struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
}

// NewSMTPSender builds an SMTP sender from mail configuration.
func NewSMTPSender(cfg *config.MailConfig) *SMTPSender {
	return &SMTPSender{
		dialer:   gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.Username, cfg.Password),
		from:     cfg.From,
		fromName: cfg.FromName,
	}
}

// Send delivers a single HTML message. Synchronous: the caller decides
// whether a delivery failure is fatal for its flow.
func (s *SMTPSender) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, s.fromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
