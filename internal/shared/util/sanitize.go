package util

import (
	"errors"
	"strings"
)

// SanitizeFileName makes an uploaded file name safe for reuse in mail
// headers and storage paths: it rejects traversal patterns and replaces
// path separators and quotes.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	s := strings.TrimSpace(name)
	replacer := strings.NewReplacer("/", "_", "\\", "_", `"`, "'", "\r", "", "\n", "")
	s = replacer.Replace(s)
	if s == "" {
		return "", errors.New("invalid file name")
	}
	return s, nil
}
