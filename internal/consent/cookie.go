package consent

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CookieName is the single cookie holding the JSON-serialized record.
const CookieName = "cookie_consent"

// Store abstracts the visitor's cookie jar so the manager can be exercised
// against a fake in tests.
type Store interface {
	// Read returns the raw consent cookie value, if present.
	Read(c *gin.Context) (string, bool)
	// Write persists the consent cookie. Failures are not reported;
	// an unwritable jar degrades to "no record" on the next visit.
	Write(c *gin.Context, value string)
	// Expire deletes a cookie by name under the given domain scope.
	// Empty domain means host-only.
	Expire(c *gin.Context, name, domain string)
	// RequestCookies lists the names of all cookies the visitor sent.
	RequestCookies(c *gin.Context) []string
}

// CookieStore is the production Store backed by the HTTP request/response.
type CookieStore struct {
	// Domain scopes the consent cookie; empty means host-only.
	Domain string
}

func (s CookieStore) Read(c *gin.Context) (string, bool) {
	val, err := c.Cookie(CookieName)
	if err != nil {
		return "", false
	}
	return val, true
}

func (s CookieStore) Write(c *gin.Context, value string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, value, RetentionDays*24*60*60, "/", s.Domain, true, false)
}

func (s CookieStore) Expire(c *gin.Context, name, domain string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, "", -1, "/", domain, true, false)
}

func (s CookieStore) RequestCookies(c *gin.Context) []string {
	cookies := c.Request.Cookies()
	names := make([]string, 0, len(cookies))
	for _, ck := range cookies {
		names = append(names, ck.Name)
	}
	return names
}

// decode parses a stored cookie value. Unparsable JSON or a version
// mismatch yields (zero, false): the record is treated as absent.
func decode(raw string) (Record, bool) {
	var rec Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return Record{}, false
	}
	if rec.Version != Version {
		return Record{}, false
	}
	return rec.Sanitize(), true
}

func encode(rec Record) string {
	data, err := json.Marshal(rec)
	if err != nil {
		return ""
	}
	return string(data)
}
