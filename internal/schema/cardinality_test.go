package schema

import "testing"

func TestParseCardinality(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Cardinality
	}{
		{in: "true", want: One},
		{in: "1", want: One},
		{in: "*", want: Many},
		{in: "+", want: Many},
		{in: "0", want: Optional},
		{in: "-1", want: Optional},
		{in: "", want: Optional},
		{in: "false", want: Optional},
	}

	for _, tc := range tests {
		if got := ParseCardinality(tc.in); got != tc.want {
			t.Fatalf("ParseCardinality(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestCardinalityWrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		c    Cardinality
		want string
	}{
		{c: Optional, want: "*float64"},
		{c: One, want: "float64"},
		{c: Many, want: "[]float64"},
	}

	for _, tc := range tests {
		if got := tc.c.Wrap("float64"); got != tc.want {
			t.Fatalf("%v.Wrap(float64) = %q, want %q", tc.c, got, tc.want)
		}
	}
}
