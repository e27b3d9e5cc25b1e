package ports

import (
	"context"

	"github.com/baditaflorin/go_mixed_script_similarity/internal/core/domain"
)

// SimilarityCalculator defines the interface for scoring a pair of strings.
type SimilarityCalculator interface {
	Compute(ctx context.Context, first, second string) domain.Result
}
