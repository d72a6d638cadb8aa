package mailer

import (
	"context"
	"fmt"
	"html"

	"gopkg.in/gomail.v2"
)

// Message is a single outbound mail.
type Message struct {
	To      []string
	Subject string
	Body    string
}

// Sender delivers a message to an SMTP relay.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPSender sends mail through a single configured SMTP relay with STARTTLS.
type SMTPSender struct {
	host string
	port int
	user string
	pass string
	from string
}

func NewSMTPSender(host string, port int, user, pass, from string) *SMTPSender {
	if from == "" {
		from = user
	}
	return &SMTPSender{
		host: host,
		port: port,
		user: user,
		pass: pass,
		from: from,
	}
}

// Configured reports whether every setting needed to dial the relay is present.
func (s *SMTPSender) Configured() bool {
	return s.host != "" && s.port != 0 && s.user != "" && s.pass != "" && s.from != ""
}

// Send dials the relay and delivers one message with a plain-text body and an
// HTML alternative. Each call uses a fresh connection; there is no pooling.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if !s.Configured() {
		return fmt.Errorf("SMTP not configured on server")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)
	m.AddAlternative("text/html", htmlBody(msg.Body))

	d := gomail.NewDialer(s.host, s.port, s.user, s.pass)

	// gomail has no context support; run the dial in a goroutine so a
	// cancelled request does not keep its handler blocked.
	done := make(chan error, 1)
	go func() {
		done <- d.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func htmlBody(body string) string {
	return fmt.Sprintf(`<html><body><pre style="font-family: ui-monospace, monospace;">%s</pre></body></html>`, html.EscapeString(body))
}
