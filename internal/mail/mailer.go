// Package mail composes and dispatches outbound notification email.
package mail

import (
	"context"

	"consultancy-backend/internal/shared/telemetry"
)

// Attachment is a binary file carried by a message.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Message is the outbound email contract handed to a Mailer.
type Message struct {
	To          string
	Subject     string
	HTML        string
	ReplyTo     string
	Attachments []Attachment
}

// Mailer delivers a composed message on behalf of the system.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// LogMailer logs messages instead of sending them. It is the fallback when
// mail credentials are not configured, so dev environments keep working.
type LogMailer struct{}

func (LogMailer) Send(ctx context.Context, msg Message) error {
	names := make([]string, 0, len(msg.Attachments))
	for _, a := range msg.Attachments {
		names = append(names, a.Filename)
	}
	telemetry.Info("mail.logged", map[string]any{
		"to":          msg.To,
		"subject":     msg.Subject,
		"reply_to":    msg.ReplyTo,
		"attachments": names,
	})
	return nil
}
