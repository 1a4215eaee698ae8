package render

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var unsafeForPath = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// BundleName sanitizes a pattern string into something safe to use as a
// single path component for a run's output directory.
func BundleName(pattern string) string {
	sanitized := unsafeForPath.ReplaceAllString(pattern, "_")
	sanitized = strings.Trim(sanitized, "_")
	if sanitized == "" {
		return RandomBundleName()
	}
	return sanitized
}

// RandomBundleName returns a fresh collision-free directory name, for
// callers that cannot derive one from the pattern (e.g. concurrent scans
// over patterns that sanitize to the same string).
func RandomBundleName() string {
	return uuid.NewString()
}
