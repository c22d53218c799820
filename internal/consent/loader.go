package consent

import "sync"

// Loader guards the analytics snippet behind an explicit loaded/not-loaded
// state. EnsureLoaded is the only entry point; the build function runs at
// most once no matter how many consent transitions grant analytics.
type Loader struct {
	mu      sync.Mutex
	loaded  bool
	snippet string
}

// EnsureLoaded returns the analytics snippet, building it on first use.
// Subsequent calls return the cached snippet without invoking build.
func (l *Loader) EnsureLoaded(build func() (string, error)) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.loaded {
		return l.snippet, nil
	}
	snippet, err := build()
	if err != nil {
		return "", err
	}
	l.snippet = snippet
	l.loaded = true
	return l.snippet, nil
}

// Loaded reports whether the snippet has been built.
func (l *Loader) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}
