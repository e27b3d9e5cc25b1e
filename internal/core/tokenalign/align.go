// Package tokenalign implements a Monge-Elkan style alignment score between
// the word-token sets of two English strings.
package tokenalign

import (
	"strings"

	"github.com/baditaflorin/go_mixed_script_similarity/internal/core/editdist"
	"github.com/baditaflorin/go_mixed_script_similarity/internal/ports"
)

// Aligner scores a pair of strings by best-aligning their token sets.
type Aligner struct {
	normalizer ports.Normalizer
}

// NewAligner creates a new token aligner using the given normalizer for
// preprocessing.
func NewAligner(normalizer ports.Normalizer) *Aligner {
	return &Aligner{normalizer: normalizer}
}

// Score returns the alignment score for s1 and s2 in [0, 1].
//
// Both inputs are normalized (whitespace collapsed, upper-cased, trimmed)
// and split into token sets. Every token of the smaller set is matched
// against its best edit-distance similarity in the larger set; the summed
// maxima are divided by the LARGER set's size, so a length mismatch between
// the sets lowers the score. Ties keep the first argument as the query set.
//
// If either token set is empty the score is 0.0.
func (a *Aligner) Score(s1, s2 string) float64 {
	query := tokenSet(a.normalizer.Normalize(s1))
	reference := tokenSet(a.normalizer.Normalize(s2))

	if len(query) == 0 || len(reference) == 0 {
		return 0.0
	}
	if len(query) > len(reference) {
		query, reference = reference, query
	}

	sum := 0.0
	for _, qt := range query {
		best := 0.0
		for _, rt := range reference {
			if s := editdist.Similarity(qt, rt); s > best {
				best = s
			}
		}
		sum += best
	}
	return sum / float64(len(reference))
}

// tokenSet splits normalized text on spaces and deduplicates while keeping
// first-seen order, so iteration stays deterministic.
func tokenSet(text string) []string {
	if text == "" {
		return nil
	}
	fields := strings.Split(text, " ")
	seen := make(map[string]struct{}, len(fields))
	tokens := fields[:0]
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		tokens = append(tokens, f)
	}
	return tokens
}
