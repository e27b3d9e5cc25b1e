package tokenalign

import (
	"math"
	"testing"

	"github.com/baditaflorin/go_mixed_script_similarity/internal/adapters/normalizer"
)

func newAligner() *Aligner {
	return NewAligner(normalizer.NewTokenNormalizer())
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScore(t *testing.T) {
	a := newAligner()

	tests := []struct {
		name string
		s1   string
		s2   string
		want float64
	}{
		{
			name: "Subset divided by larger set",
			s1:   "NEW YORK",
			s2:   "NEW YORK CITY",
			// NEW and YORK match exactly, divided by the 3-token reference.
			want: 2.0 / 3.0,
		},
		{"Identical token sets", "HONG KONG", "HONG KONG", 1.0},
		{"Case insensitive", "hong kong", "HONG KONG", 1.0},
		{"Whitespace collapsed", "HONG    KONG", "HONG KONG", 1.0},
		{"Order independent", "KONG HONG", "HONG KONG", 1.0},
		{"Duplicates collapse into a set", "NEW NEW YORK", "NEW YORK", 1.0},
		{"Empty first input", "", "NEW YORK", 0.0},
		{"Empty second input", "NEW YORK", "", 0.0},
		{"Both empty", "", "", 0.0},
		{"Whitespace only", "   ", "NEW YORK", 0.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.Score(tc.s1, tc.s2); !almostEqual(got, tc.want) {
				t.Errorf("Score(%q, %q) = %v, want %v", tc.s1, tc.s2, got, tc.want)
			}
		})
	}
}

func TestScoreSymmetricAcrossArgumentOrder(t *testing.T) {
	a := newAligner()
	s1, s2 := "UNIVERSITY OF HONG KONG", "HONG KONG UNIV"
	if got1, got2 := a.Score(s1, s2), a.Score(s2, s1); !almostEqual(got1, got2) {
		t.Errorf("Score(%q, %q) = %v but reversed = %v", s1, s2, got1, got2)
	}
}

func TestScorePartialTokenMatch(t *testing.T) {
	a := newAligner()
	// FLAW vs LAWN has similarity 0.5, so the single query token contributes
	// 0.5 against a 1-token reference.
	if got := a.Score("FLAW", "LAWN"); !almostEqual(got, 0.5) {
		t.Errorf("Score(FLAW, LAWN) = %v, want 0.5", got)
	}
}
