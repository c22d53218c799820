// Package forms holds the field validators shared by the contact and CV
// submission pipelines. Both the handler boundary and the service
// re-validation call the same functions, so the two checks cannot drift.
package forms

import (
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"
)

// FieldError reports a single failed constraint on a named field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// First returns the first error in the list, or nil when the list is empty.
// Handlers surface only the first failing field to the caller.
func First(errs []FieldError) *FieldError {
	if len(errs) == 0 {
		return nil
	}
	return &errs[0]
}

// MinLength validates that the trimmed value has at least min characters.
func MinLength(field, value string, min int, message string) *FieldError {
	if utf8.RuneCountInString(strings.TrimSpace(value)) < min {
		return &FieldError{Field: field, Message: message}
	}
	return nil
}

// Email validates the value parses as a single RFC 5322 address.
func Email(field, value string) *FieldError {
	addr, err := mail.ParseAddress(strings.TrimSpace(value))
	if err != nil || addr.Address != strings.TrimSpace(value) {
		return &FieldError{Field: field, Message: "Please enter a valid email address"}
	}
	return nil
}

// Phone validates the value has at least 10 characters after trimming.
func Phone(field, value string) *FieldError {
	return MinLength(field, value, 10, "Please enter a valid phone number")
}

// OptionalURL validates the value parses as an absolute http(s) URL when
// present. An empty value passes.
func OptionalURL(field, value string) *FieldError {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	u, err := url.Parse(trimmed)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &FieldError{Field: field, Message: "Please enter a valid URL"}
	}
	return nil
}

// ConsentGiven validates a mandatory consent checkbox.
func ConsentGiven(field string, value bool, message string) *FieldError {
	if !value {
		return &FieldError{Field: field, Message: message}
	}
	return nil
}

// OneOf validates the value belongs to the allowed set.
func OneOf(field, value string, allowed []string, message string) *FieldError {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &FieldError{Field: field, Message: message}
}
