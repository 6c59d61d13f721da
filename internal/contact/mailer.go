// Package contact delivers contact-form submissions as email.
package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Message is a contact-form submission.
type Message struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// Mailer sends one contact message. Delivery is attempted once.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Config selects and configures the mail provider.
type Config struct {
	Provider string // smtp, ses or log
	To       string
	From     string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string

	AWSRegion string
}

// errNoDestination is reported per message, like missing credentials.
var errNoDestination = errors.New("contact destination address not configured")

// New builds the mailer named by cfg.Provider.
func New(cfg Config) (Mailer, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	switch provider {
	case "", "smtp":
		return NewSMTPMailer(cfg), nil
	case "ses":
		return NewSESMailer(cfg)
	case "log":
		return LogMailer{}, nil
	default:
		return nil, fmt.Errorf("unknown contact provider %q", cfg.Provider)
	}
}

// compose renders the fixed notification template.
func compose(msg Message) (subject, body string) {
	subject = fmt.Sprintf("Portfolio Contact: %s", msg.Name)
	body = fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, msg.Name, msg.Email, msg.Message)
	return subject, body
}
