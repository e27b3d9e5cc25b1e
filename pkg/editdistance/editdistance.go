// Package editdistance exposes the Levenshtein engine as a public API.
package editdistance

import (
	"github.com/baditaflorin/go_mixed_script_similarity/internal/core/editdist"
)

// Distance returns the Levenshtein distance between s1 and s2 over Unicode
// code points. The result is independent of argument order.
func Distance(s1, s2 string) int {
	return editdist.Distance(s1, s2)
}

// Similarity returns 1 - Distance(s1, s2)/max(len(s1), len(s2)) in [0, 1].
// Two empty strings score 1.0.
func Similarity(s1, s2 string) float64 {
	return editdist.Similarity(s1, s2)
}
