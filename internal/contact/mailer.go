// AngelaMos | 2026
// mailer.go

package contact

import (
	"fmt"
	"net/smtp"
	"strings"
)

type Mailer interface {
	Send(subject, body string) error
}

type SMTPMailer struct {
	host string
	port int
	from string
	to   string
}

func NewSMTPMailer(host string, port int, from, to string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, from: from, to: to}
}

func (m *SMTPMailer) Send(subject, body string) error {
	addr := fmt.Sprintf("%s:%d", m.host, m.port)

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", m.to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	if err := smtp.SendMail(addr, nil, m.from, []string{m.to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	return nil
}
