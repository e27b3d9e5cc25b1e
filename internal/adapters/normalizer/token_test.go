package normalizer

import "testing"

func TestNormalizers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Collapses whitespace runs", "new   york \t city", "NEW YORK CITY"},
		{"Trims both ends", "  hong kong  ", "HONG KONG"},
		{"Empty input", "", ""},
		{"Whitespace only", "   ", ""},
		{"Already normalized", "HKU", "HKU"},
		{"Non-ascii falls back", "café  bar", "CAFÉ BAR"},
	}

	for _, n := range []struct {
		name string
		norm interface{ Normalize(string) string }
	}{
		{"TokenNormalizer", NewTokenNormalizer()},
		{"FastTokenNormalizer", NewFastTokenNormalizer()},
	} {
		for _, tc := range tests {
			t.Run(n.name+"/"+tc.name, func(t *testing.T) {
				if got := n.norm.Normalize(tc.input); got != tc.want {
					t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
				}
			})
		}
	}
}
