package consent

import "strings"

// DenyList names the third-party cookies subject to deletion when consent
// for analytics or marketing is withdrawn. The list is best-effort and
// non-exhaustive: the module cannot know every cookie a third-party script
// may have set, so it matches known names and prefix families.
type DenyList struct {
	Exact    []string
	Prefixes []string
}

// DefaultDenyList covers Google Analytics, Google Ads and Meta Pixel.
func DefaultDenyList() DenyList {
	return DenyList{
		Exact:    []string{"_ga", "_gid", "_gat", "_gcl_au", "_fbp", "_fbc"},
		Prefixes: []string{"_ga_", "_gat_", "_hj"},
	}
}

// Matches reports whether the cookie name is on the deny-list.
func (d DenyList) Matches(name string) bool {
	for _, e := range d.Exact {
		if name == e {
			return true
		}
	}
	for _, p := range d.Prefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// SweepTargets returns every cookie name to expire: the full exact list
// (deletion is attempted whether or not the cookie was sent) plus any sent
// cookie matching a prefix family.
func (d DenyList) SweepTargets(sent []string) []string {
	seen := make(map[string]struct{}, len(d.Exact)+len(sent))
	targets := make([]string, 0, len(d.Exact)+len(sent))
	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		targets = append(targets, name)
	}
	for _, e := range d.Exact {
		add(e)
	}
	for _, name := range sent {
		if d.Matches(name) {
			add(name)
		}
	}
	return targets
}

// DomainVariants returns the domain scopes a deletion must cover. Cookie
// scoping is ambiguous to the caller, so both the bare domain and its
// dot-prefixed form are tried, along with host-only.
func DomainVariants(domain string) []string {
	domain = strings.TrimSpace(domain)
	if domain == "" {
		return []string{""}
	}
	bare := strings.TrimPrefix(domain, ".")
	return []string{"", bare, "." + bare}
}
