package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Sender delivers a single HTML email. Implemented by Mailer and faked in
// tests.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

// Mailer sends HTML email over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(host string, port int, username, password, from string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send delivers one HTML message. Transport errors are returned to the
// caller; retry policy is the caller's concern.
func (m *Mailer) Send(to, subject, htmlBody string) error {
	if to == "" {
		return fmt.Errorf("empty recipient")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}
