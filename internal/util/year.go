package util

import "regexp"

var yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// YearFromFilename pulls the first plausible 4-digit publication year out of
// a filename. Files without one are excluded from ingestion upstream, so the
// second return distinguishes "no year" from year zero.
func YearFromFilename(name string) (int, bool) {
	m := yearPattern.FindString(name)
	if m == "" {
		return 0, false
	}
	year := 0
	for _, c := range m {
		year = year*10 + int(c-'0')
	}
	return year, true
}
