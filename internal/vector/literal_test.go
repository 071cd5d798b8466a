package vector

import "testing"

func TestToLiteral(t *testing.T) {
	cases := []struct {
		in   []float32
		want string
	}{
		{[]float32{1, 2, 3}, "[1,2,3]"},
		{[]float32{0.5, -0.25}, "[0.5,-0.25]"},
		{[]float32{0}, "[0]"},
		{[]float32{}, "[]"},
	}
	for _, tc := range cases {
		if got := ToLiteral(tc.in); got != tc.want {
			t.Fatalf("ToLiteral(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
