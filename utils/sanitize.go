package utils

import (
	"html"
	"strings"
)

// SanitizeInput trims and HTML-escapes free text coming from clients, so
// stored content is safe to embed in rendered reports.
func SanitizeInput(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
