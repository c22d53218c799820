// Package content reads marketing copy from the headless CMS, falling back
// to a built-in dataset of identical shape when the CMS is unavailable.
package content

// Service is one consultancy service offering.
type Service struct {
	Slug    string `json:"slug"`
	Name    string `json:"name"`
	Summary string `json:"summary"`
	Body    string `json:"body,omitempty"`
}

// Testimonial is a client quote shown on the marketing pages.
type Testimonial struct {
	Author  string `json:"author"`
	Role    string `json:"role"`
	Company string `json:"company"`
	Quote   string `json:"quote"`
}
