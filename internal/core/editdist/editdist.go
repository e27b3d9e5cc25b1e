// Package editdist implements the Levenshtein edit distance and a derived
// normalized similarity score over Unicode code points.
package editdist

import (
	"github.com/baditaflorin/go_mixed_script_similarity/internal/pool"
)

// rowPool recycles DP rows across calls. Distance is on the hot path of
// token alignment, which calls it once per token pair.
var rowPool = pool.NewIntRowPool(64)

// Distance returns the Levenshtein distance between s1 and s2: the minimum
// number of single code point insertions, deletions, and substitutions that
// transform one into the other.
//
// The computation is symmetric in its arguments. The shorter string always
// indexes the DP row, so Distance(a, b) == Distance(b, a) holds structurally
// and space usage is O(min(len(s1), len(s2))).
func Distance(s1, s2 string) int {
	r1 := []rune(s1)
	r2 := []rune(s2)

	// Keep the shorter string second; a swap transposes insertions and
	// deletions, which cost the same.
	if len(r1) < len(r2) {
		r1, r2 = r2, r1
	}
	if len(r2) == 0 {
		return len(r1)
	}

	prev := rowPool.Get(len(r2) + 1)
	defer rowPool.Put(prev)
	row := *prev

	for j := range row {
		row[j] = j
	}
	for i, c1 := range r1 {
		// row[0] is the distance from r1[:i+1] to the empty prefix.
		diag := row[0]
		row[0] = i + 1
		for j, c2 := range r2 {
			ins := row[j+1] + 1
			del := row[j] + 1
			sub := diag
			if c1 != c2 {
				sub++
			}
			diag = row[j+1]
			row[j+1] = min3(ins, del, sub)
		}
	}
	return row[len(r2)]
}

// Similarity returns a normalized score in [0, 1]:
//
//	1.0 - Distance(s1, s2) / max(len(s1), len(s2))
//
// Two empty strings are identical, so Similarity("", "") is defined as 1.0
// rather than evaluating the formula's zero denominator.
func Similarity(s1, s2 string) float64 {
	n1 := len([]rune(s1))
	n2 := len([]rune(s2))
	maxLen := n1
	if n2 > maxLen {
		maxLen = n2
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(Distance(s1, s2))/float64(maxLen)
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
