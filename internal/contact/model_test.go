package contact

import "testing"

func validSubmission() Submission {
	return Submission{
		Name:            "Jane Doe",
		Email:           "jane@example.com",
		Phone:           "07700900123",
		ServiceInterest: "staffing",
		Message:         "We need interim staff.",
		PrivacyConsent:  true,
	}
}

func TestValidateAcceptsValidSubmission(t *testing.T) {
	if errs := validSubmission().Validate(); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestValidateMessageLengthBoundary(t *testing.T) {
	sub := validSubmission()

	sub.Message = "123456789" // 9 chars
	errs := sub.Validate()
	if len(errs) != 1 || errs[0].Field != "message" {
		t.Fatalf("expected message error for 9 chars, got %v", errs)
	}

	sub.Message = "1234567890" // 10 chars
	if errs := sub.Validate(); len(errs) != 0 {
		t.Fatalf("10 chars must pass, got %v", errs)
	}
}

func TestValidateRejectsMissingConsent(t *testing.T) {
	sub := validSubmission()
	sub.PrivacyConsent = false
	errs := sub.Validate()
	if len(errs) != 1 || errs[0].Field != "privacyConsent" {
		t.Fatalf("expected privacyConsent error, got %v", errs)
	}
}

func TestValidateRejectsUnknownService(t *testing.T) {
	sub := validSubmission()
	sub.ServiceInterest = ""
	if errs := sub.Validate(); len(errs) != 1 || errs[0].Field != "serviceInterest" {
		t.Fatalf("expected serviceInterest error, got %v", errs)
	}
	sub.ServiceInterest = "alchemy"
	if errs := sub.Validate(); len(errs) != 1 || errs[0].Field != "serviceInterest" {
		t.Fatalf("expected serviceInterest error, got %v", errs)
	}
}

func TestServiceLabel(t *testing.T) {
	if got := ServiceLabel("staffing"); got != "Staffing" {
		t.Fatalf("expected Staffing, got %q", got)
	}
	if got := ServiceLabel("unknown-code"); got != "unknown-code" {
		t.Fatalf("expected raw code passthrough, got %q", got)
	}
}
