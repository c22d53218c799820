// Package captcha verifies CAPTCHA tokens against Google's siteverify API.
package captcha

import "context"

// Result is what the external verifier reports for a token.
type Result struct {
	Success bool
	Score   float64
}

// Verifier scores the likelihood a submission is automated.
type Verifier interface {
	Verify(ctx context.Context, token string) (Result, error)
}

// Permissive accepts every token. It is the documented fallback for
// environments without a configured CAPTCHA secret, not a bug.
type Permissive struct{}

func (Permissive) Verify(ctx context.Context, token string) (Result, error) {
	return Result{Success: true, Score: 1.0}, nil
}
