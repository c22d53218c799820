package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"consultancy-backend/internal/shared/telemetry"
)

// ErrNotFound reports an unknown slug.
var ErrNotFound = errors.New("content: not found")

// Source is the read-only content contract the handlers depend on.
type Source interface {
	Services(ctx context.Context) ([]Service, error)
	ServiceBySlug(ctx context.Context, slug string) (Service, error)
	Testimonials(ctx context.Context) ([]Testimonial, error)
}

// CMSClient fetches copy from the headless CMS.
type CMSClient struct {
	BaseURL string
	Token   string
	Client  *http.Client
}

// NewCMSClient builds a client with a bounded request timeout.
func NewCMSClient(baseURL, token string) *CMSClient {
	return &CMSClient{
		BaseURL: baseURL,
		Token:   token,
		Client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *CMSClient) Services(ctx context.Context) ([]Service, error) {
	var out []Service
	if err := c.get(ctx, "/api/services", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CMSClient) ServiceBySlug(ctx context.Context, slug string) (Service, error) {
	var out Service
	if err := c.get(ctx, "/api/services/"+url.PathEscape(slug), &out); err != nil {
		return Service{}, err
	}
	return out, nil
}

func (c *CMSClient) Testimonials(ctx context.Context) ([]Testimonial, error) {
	var out []Testimonial
	if err := c.get(ctx, "/api/testimonials", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CMSClient) get(ctx context.Context, path string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	client := c.Client
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cms status %d for %s", resp.StatusCode, path)
	}
	return json.NewDecoder(resp.Body).Decode(target)
}

// Fallback serves from the primary source and degrades to the static
// dataset when the primary is unavailable. Unknown slugs are not treated
// as outages.
type Fallback struct {
	Primary Source
	static  Static
}

// NewSource picks the CMS with static fallback when configured, or the
// static dataset alone otherwise.
func NewSource(baseURL, token string) Source {
	if baseURL == "" {
		return Static{}
	}
	return &Fallback{Primary: NewCMSClient(baseURL, token)}
}

func (f *Fallback) Services(ctx context.Context) ([]Service, error) {
	svcs, err := f.Primary.Services(ctx)
	if err != nil {
		f.logDegrade("services", err)
		return f.static.Services(ctx)
	}
	return svcs, nil
}

func (f *Fallback) ServiceBySlug(ctx context.Context, slug string) (Service, error) {
	svc, err := f.Primary.ServiceBySlug(ctx, slug)
	if errors.Is(err, ErrNotFound) {
		return Service{}, err
	}
	if err != nil {
		f.logDegrade("service", err)
		return f.static.ServiceBySlug(ctx, slug)
	}
	return svc, nil
}

func (f *Fallback) Testimonials(ctx context.Context) ([]Testimonial, error) {
	ts, err := f.Primary.Testimonials(ctx)
	if err != nil {
		f.logDegrade("testimonials", err)
		return f.static.Testimonials(ctx)
	}
	return ts, nil
}

func (f *Fallback) logDegrade(collection string, err error) {
	telemetry.Error("content.fallback", map[string]any{
		"collection": collection,
		"err":        err.Error(),
	})
}
