package contact_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"consultancy-backend/internal/captcha"
	"consultancy-backend/internal/contact"
	"consultancy-backend/internal/mail"
)

type stubMailer struct {
	sent int
	err  error
}

func (m *stubMailer) Send(ctx context.Context, msg mail.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent++
	return nil
}

type stubVerifier struct {
	result captcha.Result
}

func (v stubVerifier) Verify(ctx context.Context, token string) (captcha.Result, error) {
	return v.result, nil
}

func newRouter(mailer mail.Mailer, verifier captcha.Verifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := &contact.Service{Mailer: mailer, Verifier: verifier, Recipient: "enquiries@example.co.uk"}
	r := gin.New()
	contact.NewHandler(svc).RegisterRoutes(r.Group(""))
	return r
}

const validBody = `{
	"name": "Jane Doe",
	"email": "jane@example.com",
	"phone": "07700900123",
	"serviceInterest": "staffing",
	"message": "We need interim staff.",
	"privacyConsent": true
}`

func post(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestContactSubmitSuccess(t *testing.T) {
	mailer := &stubMailer{}
	resp := post(newRouter(mailer, captcha.Permissive{}), validBody)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var out struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Message == "" {
		t.Fatalf("expected success message")
	}
	if mailer.sent != 1 {
		t.Fatalf("expected 1 dispatch, got %d", mailer.sent)
	}
}

func TestContactSubmitShortMessage(t *testing.T) {
	mailer := &stubMailer{}
	body := strings.Replace(validBody, "We need interim staff.", "123456789", 1)
	resp := post(newRouter(mailer, captcha.Permissive{}), body)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if mailer.sent != 0 {
		t.Fatalf("no dispatch on validation failure")
	}
	var out struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(out.Error, "enquiry") {
		t.Fatalf("expected the message field error, got %q", out.Error)
	}
}

func TestContactSubmitWithoutConsent(t *testing.T) {
	mailer := &stubMailer{}
	body := strings.Replace(validBody, `"privacyConsent": true`, `"privacyConsent": false`, 1)
	resp := post(newRouter(mailer, captcha.Permissive{}), body)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if mailer.sent != 0 {
		t.Fatalf("no dispatch without consent")
	}
}

func TestContactSubmitCaptchaRejected(t *testing.T) {
	mailer := &stubMailer{}
	router := newRouter(mailer, stubVerifier{result: captcha.Result{Success: true, Score: 0.1}})
	body := strings.Replace(validBody, `"privacyConsent": true`, `"privacyConsent": true, "recaptchaToken": "tok"`, 1)
	resp := post(router, body)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	var out struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if strings.Contains(out.Error, "0.1") {
		t.Fatalf("score must not be exposed: %q", out.Error)
	}
	if mailer.sent != 0 {
		t.Fatalf("no dispatch on captcha rejection")
	}
}

func TestContactSubmitPermissiveFallbackWithoutToken(t *testing.T) {
	// No secret configured means the permissive verifier; a token-less
	// submission still succeeds.
	mailer := &stubMailer{}
	resp := post(newRouter(mailer, captcha.Permissive{}), validBody)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestContactSubmitDispatchFailure(t *testing.T) {
	mailer := &stubMailer{err: errors.New("gmail 403")}
	resp := post(newRouter(mailer, captcha.Permissive{}), validBody)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	var out struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if strings.Contains(out.Error, "gmail") {
		t.Fatalf("dispatch detail must not leak: %q", out.Error)
	}
}

func TestContactSubmitMalformedJSON(t *testing.T) {
	resp := post(newRouter(&stubMailer{}, captcha.Permissive{}), `{not json`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
