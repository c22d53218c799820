// Package bootstrap wires configuration into the handlers and router.
package bootstrap

import (
	"log"

	"github.com/gin-gonic/gin"

	"consultancy-backend/internal/captcha"
	"consultancy-backend/internal/careers"
	"consultancy-backend/internal/consent"
	"consultancy-backend/internal/contact"
	"consultancy-backend/internal/content"
	"consultancy-backend/internal/mail"
	"consultancy-backend/internal/seo"
	"consultancy-backend/internal/shared/config"
	"consultancy-backend/internal/shared/server"
)

// App holds the shared dependencies behind the HTTP surface.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	Mailer         mail.Mailer
	Verifier       captcha.Verifier
	ContentSource  content.Source
	ConsentManager *consent.Manager
}

// Build prepares dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	app := &App{
		Config:        cfg,
		Mailer:        buildMailer(cfg),
		Verifier:      buildVerifier(cfg),
		ContentSource: content.NewSource(cfg.CMSBaseURL, cfg.CMSAPIToken),
	}

	app.ConsentManager = consent.NewManager(
		consent.CookieStore{Domain: cfg.ConsentCookieDomain},
		cfg.ConsentCookieDomain,
	)

	site := seo.Site{
		Name:    cfg.SiteName,
		BaseURL: cfg.SiteBaseURL,
		Email:   cfg.ContactRecipient,
		Phone:   cfg.SitePhone,
	}

	contactSvc := &contact.Service{
		Mailer:    app.Mailer,
		Verifier:  app.Verifier,
		Recipient: cfg.ContactRecipient,
	}
	careersSvc := &careers.Service{
		Mailer:    app.Mailer,
		Recipient: cfg.ContactRecipient,
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         cfg,
		ConsentHandler: consent.NewHandler(app.ConsentManager, cfg.GAMeasurementID),
		ContactHandler: contact.NewHandler(contactSvc),
		CareersHandler: careers.NewHandler(careersSvc),
		ContentHandler: content.NewHandler(app.ContentSource),
		SEOHandler:     seo.NewHandler(site, app.ContentSource),
	})

	return app, nil
}

// buildMailer returns the Gmail mailer when credentials are configured and
// the logging fallback otherwise.
func buildMailer(cfg config.Config) mail.Mailer {
	if cfg.GmailUser == "" || cfg.GmailClientID == "" || cfg.GmailClientSecret == "" || cfg.GmailRefreshToken == "" {
		log.Printf("bootstrap: gmail credentials incomplete; outbound mail will be logged")
		return mail.LogMailer{}
	}
	return mail.NewGmailMailer(cfg.GmailUser, cfg.GmailClientID, cfg.GmailClientSecret, cfg.GmailRefreshToken)
}

// buildVerifier returns the reCAPTCHA verifier, or the permissive fallback
// when no secret is configured.
func buildVerifier(cfg config.Config) captcha.Verifier {
	if cfg.RecaptchaSecretKey == "" {
		return captcha.Permissive{}
	}
	return captcha.NewRecaptcha(cfg.RecaptchaSecretKey)
}
