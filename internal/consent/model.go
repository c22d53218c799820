// Package consent owns the cookie-consent lifecycle: one persisted
// preference record per visitor, the accept/reject/save transitions over
// it, and the gate that decides whether third-party analytics may load.
package consent

import "time"

// Version is the current consent schema version. A stored record carrying
// any other version is treated as absent, which forces a fresh prompt.
const Version = "1.0"

// RetentionDays is how long the consent cookie is kept.
const RetentionDays = 365

// Status describes whether a visitor has a usable stored record.
type Status string

const (
	// StatusUnset means no record, an unreadable record, or a record from
	// an older schema version. The consent prompt must be shown.
	StatusUnset Status = "unset"
	// StatusSet means an explicit record exists and must be respected,
	// including an explicit all-false one.
	StatusSet Status = "set"
)

// Record is the persisted set of cookie-category permissions.
type Record struct {
	Necessary   bool   `json:"necessary"`
	Analytics   bool   `json:"analytics"`
	Marketing   bool   `json:"marketing"`
	Preferences bool   `json:"preferences"`
	Timestamp   string `json:"timestamp"`
	Version     string `json:"version"`
}

// Preferences carries the caller-supplied flags for a partial save.
// Necessary is not represented; it is always forced true.
type Preferences struct {
	Analytics   bool `json:"analytics"`
	Marketing   bool `json:"marketing"`
	Preferences bool `json:"preferences"`
}

// NewRecord builds a record with the given flags, stamped now.
func NewRecord(p Preferences, now time.Time) Record {
	return Record{
		Necessary:   true,
		Analytics:   p.Analytics,
		Marketing:   p.Marketing,
		Preferences: p.Preferences,
		Timestamp:   now.UTC().Format(time.RFC3339),
		Version:     Version,
	}
}

// Sanitize forces the invariants that hold for every record regardless of
// input: necessary is always true.
func (r Record) Sanitize() Record {
	r.Necessary = true
	return r
}
