// Package careers implements the CV submission pipeline: field and file
// validation, then an outbound email carrying the CV as an attachment.
package careers

import "consultancy-backend/internal/forms"

// Submission is a CV form submission. Like contact submissions it is
// transient: validated, turned into an email, then discarded.
type Submission struct {
	FullName        string
	Email           string
	Phone           string
	LinkedIn        string
	CurrentPosition string
	CoverLetter     string
	Consent         bool
}

// Validate applies the CV field constraints. File constraints are checked
// separately; they are a distinct failure class.
func (s Submission) Validate() []forms.FieldError {
	var errs []forms.FieldError
	add := func(e *forms.FieldError) {
		if e != nil {
			errs = append(errs, *e)
		}
	}

	add(forms.MinLength("fullName", s.FullName, 2, "Please enter your full name"))
	add(forms.Email("email", s.Email))
	add(forms.Phone("phone", s.Phone))
	add(forms.OptionalURL("linkedin", s.LinkedIn))
	add(forms.MinLength("currentPosition", s.CurrentPosition, 2, "Please enter your current position"))
	add(forms.MinLength("coverLetter", s.CoverLetter, 50, "Please write a short cover letter (at least 50 characters)"))
	add(forms.ConsentGiven("consent", s.Consent, "Please consent to us processing your application"))
	return errs
}
