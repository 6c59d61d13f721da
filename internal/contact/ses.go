package contact

import (
	"context"
	"fmt"
	"html"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ses"
	"github.com/aws/aws-sdk-go/service/ses/sesiface"
)

// SESMailer sends through Amazon SES.
type SESMailer struct {
	client   sesiface.SESAPI
	from, to string
}

// NewSESMailer creates an SES client from the default AWS credential chain.
func NewSESMailer(cfg Config) (*SESMailer, error) {
	if cfg.From == "" {
		return nil, fmt.Errorf("SES requires a verified sender address")
	}
	awsCfg := aws.NewConfig()
	if cfg.AWSRegion != "" {
		awsCfg = awsCfg.WithRegion(cfg.AWSRegion)
	}
	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("error creating AWS session: %v", err)
	}
	return &SESMailer{client: ses.New(sess), from: cfg.From, to: cfg.To}, nil
}

func (m *SESMailer) Send(ctx context.Context, msg Message) error {
	if m.to == "" {
		return errNoDestination
	}
	subject, textBody := compose(msg)
	htmlBody := "<pre>" + html.EscapeString(strings.TrimSpace(textBody)) + "</pre>"

	input := &ses.SendEmailInput{
		Destination: &ses.Destination{
			ToAddresses: []*string{aws.String(m.to)},
		},
		Message: &ses.Message{
			Body: &ses.Body{
				Html: &ses.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(htmlBody),
				},
				Text: &ses.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(textBody),
				},
			},
			Subject: &ses.Content{
				Charset: aws.String("UTF-8"),
				Data:    aws.String(subject),
			},
		},
		ReplyToAddresses: []*string{aws.String(msg.Email)},
		Source:           aws.String(m.from),
	}

	if _, err := m.client.SendEmailWithContext(ctx, input); err != nil {
		log.Printf("Error sending email via SES: %v", err)
		return fmt.Errorf("failed to send contact email: %w", err)
	}

	log.Printf("Email sent via SES from %s (%s)", msg.Name, msg.Email)
	return nil
}
