// Package contact implements the contact form pipeline: validation,
// optional CAPTCHA verification and the outbound notification email.
package contact

import "consultancy-backend/internal/forms"

// Submission is a contact form submission. It lives for one request:
// validated, turned into an email, then discarded.
type Submission struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	ServiceInterest string `json:"serviceInterest"`
	Message         string `json:"message"`
	PrivacyConsent  bool   `json:"privacyConsent"`
	RecaptchaToken  string `json:"recaptchaToken"`
}

// serviceLabels maps the machine-coded serviceInterest values to the
// human-readable labels rendered in the notification email.
var serviceLabels = map[string]string{
	"strategy":   "Strategy",
	"operations": "Operations",
	"staffing":   "Staffing",
	"compliance": "Compliance",
	"training":   "Training",
	"other":      "Other",
}

// ServiceInterests lists the accepted serviceInterest codes.
func ServiceInterests() []string {
	return []string{"strategy", "operations", "staffing", "compliance", "training", "other"}
}

// ServiceLabel resolves a serviceInterest code to its display label. The
// raw code is returned for values outside the table so a label is always
// available.
func ServiceLabel(code string) string {
	if label, ok := serviceLabels[code]; ok {
		return label
	}
	return code
}

// Validate applies the contact field constraints and returns every failed
// one. The same function runs at the submission boundary and again before
// dispatch, so the two checks cannot drift.
func (s Submission) Validate() []forms.FieldError {
	var errs []forms.FieldError
	add := func(e *forms.FieldError) {
		if e != nil {
			errs = append(errs, *e)
		}
	}

	add(forms.MinLength("name", s.Name, 2, "Please enter your name"))
	add(forms.Email("email", s.Email))
	add(forms.Phone("phone", s.Phone))
	add(forms.OneOf("serviceInterest", s.ServiceInterest, ServiceInterests(), "Please select a service"))
	add(forms.MinLength("message", s.Message, 10, "Please tell us a little more about your enquiry"))
	add(forms.ConsentGiven("privacyConsent", s.PrivacyConsent, "Please accept the privacy policy"))
	return errs
}
