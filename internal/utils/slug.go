package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalidRuns = regexp.MustCompile(`[^a-z0-9]+`)
	slugValid       = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// Slugify derives a URL-safe slug from a title: lowercase, runs of
// non-alphanumeric characters collapsed to a single hyphen, leading and
// trailing hyphens stripped.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = slugInvalidRuns.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// IsValidSlug reports whether s is a non-empty lowercase slug with no
// leading, trailing, or doubled hyphens.
func IsValidSlug(s string) bool {
	return slugValid.MatchString(s)
}
