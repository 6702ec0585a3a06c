package catalog

import "strings"

// Slugify derives a URL slug from a display name.
// The input is lowercased, every run of characters outside [a-z0-9] collapses
// into a single hyphen, and leading/trailing hyphens are trimmed.
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	lastHyphen := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.Trim(b.String(), "-")
}

// IsValidSlug reports whether s is a well-formed slug: non-empty, lowercase
// alphanumeric segments separated by single hyphens.
func IsValidSlug(s string) bool {
	return s != "" && Slugify(s) == s
}
