package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultEndpoint = "https://www.google.com/recaptcha/api/siteverify"

// Recaptcha verifies tokens against Google's siteverify endpoint.
type Recaptcha struct {
	Secret   string
	Endpoint string
	Client   *http.Client
}

// NewRecaptcha builds a verifier with a bounded request timeout.
func NewRecaptcha(secret string) *Recaptcha {
	return &Recaptcha{
		Secret:   secret,
		Endpoint: defaultEndpoint,
		Client:   &http.Client{Timeout: 5 * time.Second},
	}
}

type siteverifyResponse struct {
	Success    bool     `json:"success"`
	Score      float64  `json:"score"`
	ErrorCodes []string `json:"error-codes"`
}

func (r *Recaptcha) Verify(ctx context.Context, token string) (Result, error) {
	form := url.Values{}
	form.Set("secret", r.Secret)
	form.Set("response", token)

	endpoint := r.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := r.Client
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("siteverify status %d", resp.StatusCode)
	}

	var body siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Result{}, err
	}
	return Result{Success: body.Success, Score: body.Score}, nil
}
