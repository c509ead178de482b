package report

import "strings"

// EscapeHTML neutralizes a user-supplied string for embedding as HTML
// text content. Ampersand must be replaced first, otherwise the entities
// produced by the later substitutions would be double-encoded.
// Escaping is not idempotent: callers escape exactly once, at render time.
func EscapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "'", "&#039;")
	return s
}
