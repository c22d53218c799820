package contact

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/google/uuid"

	"consultancy-backend/internal/captcha"
	"consultancy-backend/internal/mail"
	"consultancy-backend/internal/shared/telemetry"
)

// scoreThreshold is the minimum CAPTCHA confidence accepted.
const scoreThreshold = 0.5

var emailTemplate = template.Must(template.New("contact").Parse(`<h2>New enquiry via the website</h2>
<table>
  <tr><td><strong>Name</strong></td><td>{{.Name}}</td></tr>
  <tr><td><strong>Email</strong></td><td>{{.Email}}</td></tr>
  <tr><td><strong>Phone</strong></td><td>{{.Phone}}</td></tr>
  <tr><td><strong>Service</strong></td><td>{{.ServiceLabel}}</td></tr>
</table>
<h3>Message</h3>
<p>{{.Message}}</p>
`))

// Service runs the contact pipeline after validation has passed.
type Service struct {
	Mailer    mail.Mailer
	Verifier  captcha.Verifier
	Recipient string
}

// Process re-validates the submission, verifies the CAPTCHA token when one
// was supplied, composes the notification email and dispatches it.
func (s *Service) Process(ctx context.Context, sub Submission) error {
	if errs := sub.Validate(); len(errs) > 0 {
		return errs[0]
	}

	if sub.RecaptchaToken != "" {
		result, err := s.Verifier.Verify(ctx, sub.RecaptchaToken)
		if err != nil {
			telemetry.Error("contact.captcha.error", map[string]any{"err": err.Error()})
			return ErrCaptchaFailed
		}
		if !result.Success || result.Score < scoreThreshold {
			telemetry.Info("contact.captcha.rejected", map[string]any{"score": result.Score})
			return ErrCaptchaFailed
		}
	}

	label := ServiceLabel(sub.ServiceInterest)
	var body strings.Builder
	if err := emailTemplate.Execute(&body, struct {
		Submission
		ServiceLabel string
	}{Submission: sub, ServiceLabel: label}); err != nil {
		return fmt.Errorf("render email: %w", err)
	}

	submissionID := uuid.NewString()
	msg := mail.Message{
		To:      s.Recipient,
		Subject: fmt.Sprintf("New enquiry: %s (%s)", sub.Name, label),
		HTML:    body.String(),
		ReplyTo: sub.Email,
	}
	if err := s.Mailer.Send(ctx, msg); err != nil {
		telemetry.Error("contact.dispatch.failed", map[string]any{
			"submission_id": submissionID,
			"err":           err.Error(),
		})
		return ErrDispatchFailed
	}

	telemetry.Info("contact.dispatched", map[string]any{
		"submission_id": submissionID,
		"service":       sub.ServiceInterest,
	})
	return nil
}
