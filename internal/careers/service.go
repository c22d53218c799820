package careers

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/google/uuid"

	"consultancy-backend/internal/mail"
	"consultancy-backend/internal/shared/telemetry"
	"consultancy-backend/internal/shared/util"
)

var emailTemplate = template.Must(template.New("cv").Parse(`<h2>New CV submission</h2>
<table>
  <tr><td><strong>Name</strong></td><td>{{.FullName}}</td></tr>
  <tr><td><strong>Email</strong></td><td>{{.Email}}</td></tr>
  <tr><td><strong>Phone</strong></td><td>{{.Phone}}</td></tr>
  {{if .LinkedIn}}<tr><td><strong>LinkedIn</strong></td><td>{{.LinkedIn}}</td></tr>{{end}}
  <tr><td><strong>Current position</strong></td><td>{{.CurrentPosition}}</td></tr>
</table>
<h3>Cover letter</h3>
<p>{{.CoverLetter}}</p>
`))

// Service runs the CV pipeline after the handler's boundary checks.
type Service struct {
	Mailer    mail.Mailer
	Recipient string
}

// Process re-validates fields and file, composes the notification email
// with the CV attached under its original filename, and dispatches it.
func (s *Service) Process(ctx context.Context, sub Submission, cv CV) error {
	if errs := sub.Validate(); len(errs) > 0 {
		return errs[0]
	}
	if fileErr := CheckCV(cv); fileErr != nil {
		return *fileErr
	}

	filename, err := util.SanitizeFileName(cv.Filename)
	if err != nil {
		return FileError{Message: "Your CV has an invalid file name"}
	}

	var body strings.Builder
	if err := emailTemplate.Execute(&body, sub); err != nil {
		return fmt.Errorf("render email: %w", err)
	}

	submissionID := uuid.NewString()
	msg := mail.Message{
		To:      s.Recipient,
		Subject: fmt.Sprintf("New CV submission: %s", sub.FullName),
		HTML:    body.String(),
		ReplyTo: sub.Email,
		Attachments: []mail.Attachment{{
			Filename:    filename,
			ContentType: cv.ContentType,
			Data:        cv.Data,
		}},
	}
	if err := s.Mailer.Send(ctx, msg); err != nil {
		telemetry.Error("careers.dispatch.failed", map[string]any{
			"submission_id": submissionID,
			"err":           err.Error(),
		})
		return ErrDispatchFailed
	}

	telemetry.Info("careers.dispatched", map[string]any{
		"submission_id": submissionID,
		"cv_bytes":      len(cv.Data),
	})
	return nil
}
