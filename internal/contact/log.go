package contact

import (
	"context"
	"log"
)

// LogMailer only logs the message. Used in development.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, msg Message) error {
	subject, body := compose(msg)
	log.Printf("Contact message (not sent): %s\n%s", subject, body)
	return nil
}
