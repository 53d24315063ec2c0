package category

import (
	"html"
	"strings"
)

// Slugify lowercases the title and replaces only its first space with a
// hyphen. "Go Lang Basics" becomes "go-lang basics".
func Slugify(title string) string {
	return strings.Replace(strings.ToLower(title), " ", "-", 1)
}

// Sanitize escapes markup-significant characters so stored titles cannot
// carry script into rendered consumers.
func Sanitize(title string) string {
	return html.EscapeString(title)
}
