// Package tokenalign exposes the Monge-Elkan token alignment score as a
// public API.
package tokenalign

import (
	"github.com/baditaflorin/go_mixed_script_similarity/internal/adapters/normalizer"
	core "github.com/baditaflorin/go_mixed_script_similarity/internal/core/tokenalign"
	"github.com/baditaflorin/go_mixed_script_similarity/internal/ports"
)

// Aligner scores pairs of English strings by best-aligning their token sets.
type Aligner struct {
	aligner *core.Aligner
}

// Option defines a functional option for configuring the Aligner.
type Option func(*config)

type config struct {
	Normalizer ports.Normalizer
}

// WithNormalizer sets a custom preprocessing normalizer.
func WithNormalizer(n ports.Normalizer) Option {
	return func(cfg *config) {
		cfg.Normalizer = n
	}
}

// New creates a new Aligner instance.
func New(opts ...Option) *Aligner {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Normalizer == nil {
		cfg.Normalizer = normalizer.NewFastTokenNormalizer()
	}
	return &Aligner{aligner: core.NewAligner(cfg.Normalizer)}
}

// Score returns the alignment score for s1 and s2 in [0, 1]. Either input
// yielding an empty token set scores 0.0.
func (a *Aligner) Score(s1, s2 string) float64 {
	return a.aligner.Score(s1, s2)
}
