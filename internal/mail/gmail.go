package mail

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"consultancy-backend/internal/shared/telemetry"
)

const gmailSendEndpoint = "https://gmail.googleapis.com/upload/gmail/v1/users/me/messages/send?uploadType=media"

// GmailMailer sends mail through the Gmail API on behalf of a single
// account, authenticating with an OAuth2 refresh token.
type GmailMailer struct {
	From     string
	Endpoint string
	Timeout  time.Duration

	config       *oauth2.Config
	refreshToken string
	// client overrides the OAuth2-authenticated client in tests.
	client *http.Client
}

// NewGmailMailer builds a mailer for the given account credentials.
func NewGmailMailer(user, clientID, clientSecret, refreshToken string) *GmailMailer {
	return &GmailMailer{
		From:     user,
		Endpoint: gmailSendEndpoint,
		Timeout:  10 * time.Second,
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Scopes:       []string{"https://www.googleapis.com/auth/gmail.send"},
			Endpoint:     google.Endpoint,
		},
		refreshToken: refreshToken,
	}
}

// Send renders the message as RFC 822 and posts it to the Gmail API. The
// call is bounded by the mailer's timeout so a slow upstream cannot hang
// the submitting request indefinitely.
func (m *GmailMailer) Send(ctx context.Context, msg Message) error {
	raw, err := buildMIME(m.From, msg)
	if err != nil {
		return fmt.Errorf("build mime: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint(), bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "message/rfc822")

	resp, err := m.httpClient(ctx).Do(req)
	if err != nil {
		return fmt.Errorf("gmail send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		telemetry.Error("mail.send.failed", map[string]any{
			"status": resp.StatusCode,
			"body":   string(body),
			"to":     msg.To,
		})
		return fmt.Errorf("gmail send status %d", resp.StatusCode)
	}
	return nil
}

func (m *GmailMailer) httpClient(ctx context.Context) *http.Client {
	if m.client != nil {
		return m.client
	}
	source := m.config.TokenSource(ctx, &oauth2.Token{RefreshToken: m.refreshToken})
	return oauth2.NewClient(ctx, source)
}

func (m *GmailMailer) endpoint() string {
	if m.Endpoint != "" {
		return m.Endpoint
	}
	return gmailSendEndpoint
}

func (m *GmailMailer) timeout() time.Duration {
	if m.Timeout > 0 {
		return m.Timeout
	}
	return 10 * time.Second
}
