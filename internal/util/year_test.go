package util

import "testing"

func TestYearFromFilename(t *testing.T) {
	cases := []struct {
		name string
		year int
		ok   bool
	}{
		{"berkshire-1998.pdf", 1998, true},
		{"2019.pdf", 2019, true},
		{"letter-2023-final.pdf", 2023, true},
		{"notes.pdf", 0, false},
		{"chapter-12.pdf", 0, false},
		{"18990101.pdf", 0, false},
		// Digits and underscores are word characters, so a year fused to
		// them has no word boundary and does not count.
		{"2019ltr.pdf", 0, false},
		{"letter_2023_final.pdf", 0, false},
	}
	for _, tc := range cases {
		year, ok := YearFromFilename(tc.name)
		if ok != tc.ok || year != tc.year {
			t.Fatalf("%s: expected (%d,%v), got (%d,%v)", tc.name, tc.year, tc.ok, year, ok)
		}
	}
}
