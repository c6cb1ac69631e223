// Package mailer sends HTML email over SMTP.
package mailer

import (
	"gopkg.in/gomail.v2"
)

type Mailer struct {
	dialer   *gomail.Dialer
	username string
	password string
	from     string
}

func New(host string, port int, username, password, from string) *Mailer {
	return &Mailer{
		dialer:   gomail.NewDialer(host, port, username, password),
		username: username,
		password: password,
		from:     from,
	}
}

// Configured reports whether SMTP credentials were set.
func (m *Mailer) Configured() bool {
	return m.username != "" && m.password != ""
}

func (m *Mailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return m.dialer.DialAndSend(msg)
}
