package util

import "strings"

// SanitizeText strips bytes Postgres text columns reject. PDF extraction
// routinely leaks NUL and other control characters into plain text.
func SanitizeText(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, ch := range s {
		switch {
		case ch == '\n' || ch == '\r' || ch == '\t':
			b.WriteRune(ch)
		case ch < 0x20 || ch == 0x7f:
			// not valid in a Postgres text value, or invisible noise
		default:
			b.WriteRune(ch)
		}
	}
	return strings.TrimSpace(b.String())
}
