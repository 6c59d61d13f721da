package contact

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer sends through an SMTP relay with PLAIN auth.
type SMTPMailer struct {
	host, port string
	user, pass string
	from, to   string
	send       sendFunc
}

func NewSMTPMailer(cfg Config) *SMTPMailer {
	host, port := cfg.SMTPHost, cfg.SMTPPort
	if host == "" {
		host = "smtp.gmail.com"
	}
	if port == "" {
		port = "587"
	}
	from := cfg.From
	if from == "" {
		from = cfg.SMTPUser
	}
	return &SMTPMailer{
		host: host,
		port: port,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: from,
		to:   cfg.To,
		send: smtp.SendMail,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if m.to == "" {
		return errNoDestination
	}
	if m.user == "" || m.pass == "" {
		return fmt.Errorf("SMTP credentials not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	subject, body := compose(msg)

	// Header values come from the form; strip line breaks so they cannot add headers
	raw := []byte("To: " + m.to + "\r\n" +
		"Subject: " + oneLine(subject) + "\r\n" +
		"From: " + m.from + "\r\n" +
		"Reply-To: " + oneLine(msg.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	if err := m.send(m.host+":"+m.port, auth, m.from, []string{m.to}, raw); err != nil {
		log.Printf("Error sending email: %v", err)
		return fmt.Errorf("failed to send contact email: %w", err)
	}

	log.Printf("Email sent successfully from %s (%s)", msg.Name, msg.Email)
	return nil
}

func oneLine(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
