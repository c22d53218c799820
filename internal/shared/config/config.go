package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port                string
	Env                 string
	CORSAllowOrigin     []string
	SiteName            string
	SiteBaseURL         string
	SitePhone           string
	GmailUser           string
	GmailClientID       string
	GmailClientSecret   string
	GmailRefreshToken   string
	ContactRecipient    string
	RecaptchaSecretKey  string
	RecaptchaSiteKey    string
	CMSBaseURL          string
	CMSAPIToken         string
	ConsentCookieDomain string
	GAMeasurementID     string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	_ = godotenv.Load(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))

	cfg := Config{
		Port:                getEnv("PORT", "8080"),
		Env:                 env,
		CORSAllowOrigin:     splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000")),
		SiteName:            getEnv("SITE_NAME", "Albion Consulting"),
		SiteBaseURL:         getEnv("SITE_BASE_URL", "https://www.example.co.uk"),
		SitePhone:           getEnv("SITE_PHONE", ""),
		GmailUser:           getEnv("GMAIL_USER", ""),
		GmailClientID:       getEnv("GMAIL_CLIENT_ID", ""),
		GmailClientSecret:   getEnv("GMAIL_CLIENT_SECRET", ""),
		GmailRefreshToken:   getEnv("GMAIL_REFRESH_TOKEN", ""),
		ContactRecipient:    getEnv("CONTACT_RECIPIENT", ""),
		RecaptchaSecretKey:  getEnv("RECAPTCHA_SECRET_KEY", ""),
		RecaptchaSiteKey:    getEnv("RECAPTCHA_SITE_KEY", ""),
		CMSBaseURL:          getEnv("CMS_BASE_URL", ""),
		CMSAPIToken:         getEnv("CMS_API_TOKEN", ""),
		ConsentCookieDomain: getEnv("CONSENT_COOKIE_DOMAIN", ""),
		GAMeasurementID:     getEnv("GA_MEASUREMENT_ID", ""),
	}

	if cfg.ContactRecipient == "" {
		cfg.ContactRecipient = cfg.GmailUser
	}
	if env == "production" && cfg.GmailUser == "" {
		log.Printf("GMAIL_USER is empty; outbound mail will be logged, not sent")
	}
	if env == "production" && cfg.RecaptchaSecretKey == "" {
		log.Printf("RECAPTCHA_SECRET_KEY is empty; CAPTCHA verification is bypassed")
	}

	return cfg
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}
