package consent

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Manager exposes the consent transitions over an injected cookie store.
// It holds no per-visitor state; the stored cookie is the only record.
type Manager struct {
	Store    Store
	DenyList DenyList
	Domain   string
	Now      func() time.Time
}

// NewManager builds a Manager with the default deny-list.
func NewManager(store Store, domain string) *Manager {
	return &Manager{
		Store:    store,
		DenyList: DefaultDenyList(),
		Domain:   domain,
		Now:      time.Now,
	}
}

// Current reads the stored record. A missing, unreadable or stale-version
// cookie yields StatusUnset, which is distinct from an explicit all-false
// record.
func (m *Manager) Current(c *gin.Context) (Record, Status) {
	raw, ok := m.Store.Read(c)
	if !ok {
		return Record{}, StatusUnset
	}
	rec, ok := decode(raw)
	if !ok {
		return Record{}, StatusUnset
	}
	return rec, StatusSet
}

// AcceptAll persists a record with every category granted.
func (m *Manager) AcceptAll(c *gin.Context) Record {
	return m.save(c, Preferences{Analytics: true, Marketing: true, Preferences: true})
}

// RejectAll persists a record granting only the necessary category and
// sweeps previously set non-essential cookies.
func (m *Manager) RejectAll(c *gin.Context) Record {
	return m.save(c, Preferences{})
}

// SavePreferences persists caller-supplied flags. Necessary is always
// forced true. If analytics or marketing ends up false the sweep runs.
func (m *Manager) SavePreferences(c *gin.Context, p Preferences) Record {
	return m.save(c, p)
}

func (m *Manager) save(c *gin.Context, p Preferences) Record {
	rec := NewRecord(p, m.Now())
	m.Store.Write(c, encode(rec))
	if !rec.Analytics || !rec.Marketing {
		m.sweep(c)
	}
	return rec
}

// sweep expires every deny-listed cookie under every domain variant. It is
// best-effort: the browser ignores deletions for scopes that never existed.
func (m *Manager) sweep(c *gin.Context) {
	targets := m.DenyList.SweepTargets(m.Store.RequestCookies(c))
	for _, name := range targets {
		for _, domain := range DomainVariants(m.Domain) {
			m.Store.Expire(c, name, domain)
		}
	}
}
