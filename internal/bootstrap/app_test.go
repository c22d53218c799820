package bootstrap_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"consultancy-backend/internal/bootstrap"
	"consultancy-backend/internal/captcha"
	"consultancy-backend/internal/mail"
	"consultancy-backend/internal/shared/config"
)

func buildApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:             "0",
		Env:              "dev",
		CORSAllowOrigin:  []string{"http://localhost:3000"},
		SiteName:         "Albion Consulting",
		SiteBaseURL:      "https://www.albion.example.co.uk",
		ContactRecipient: "enquiries@albion.example.co.uk",
	}
	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app
}

func TestBuildWithoutCredentialsUsesFallbacks(t *testing.T) {
	app := buildApp(t)

	if _, ok := app.Mailer.(mail.LogMailer); !ok {
		t.Errorf("expected LogMailer without gmail credentials, got %T", app.Mailer)
	}
	if _, ok := app.Verifier.(captcha.Permissive); !ok {
		t.Errorf("expected permissive verifier without captcha secret, got %T", app.Verifier)
	}
}

func TestHealthEndpoint(t *testing.T) {
	app := buildApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestContactEndToEndWithLogMailer(t *testing.T) {
	app := buildApp(t)

	body := `{
		"name": "Jane Doe",
		"email": "jane@example.com",
		"phone": "07700900123",
		"serviceInterest": "staffing",
		"message": "We need interim staff.",
		"privacyConsent": true
	}`
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

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
}

func TestConsentAndContentRoutesRegistered(t *testing.T) {
	app := buildApp(t)

	req := httptest.NewRequest(http.MethodGet, "/consent", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("consent: expected 200, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/content/services", nil)
	resp = httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("content: expected 200, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/seo/organization", nil)
	resp = httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("seo: expected 200, got %d", resp.Code)
	}
}
