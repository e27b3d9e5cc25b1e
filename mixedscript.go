// mixedscript.go
// Package mixedscript scores the similarity of short strings that mix
// Chinese and English text, such as organization names scraped alongside a
// known reference name.
//
// Each input is partitioned into its Chinese-character runs and its English
// word runs. Chinese portions are compared by normalized Levenshtein
// distance, English portions by a Monge-Elkan style best alignment of their
// token sets, and the two scores are blended weighted by the larger Chinese
// character count and the larger English token count:
//
//	score = (chiScore*chiWeight + engScore*engWeight) / (chiWeight + engWeight)
//
// A pair with neither Chinese nor English content scores 0. All operations
// are pure and safe for concurrent use.
//
// This version uses the functional options pattern to allow configuration of
// parameters like threshold, precision, and logging.
package mixedscript

import (
	"context"

	"github.com/baditaflorin/l"

	"github.com/baditaflorin/go_mixed_script_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_mixed_script_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_mixed_script_similarity/internal/core/composite"
	"github.com/baditaflorin/go_mixed_script_similarity/internal/core/domain"
	"github.com/baditaflorin/go_mixed_script_similarity/internal/ports"
)

// Result holds the outcome of the mixed-script similarity computation.
type Result = domain.Result

// Config holds configuration options for the mixed-script scorer.
type Config struct {
	Threshold  float64
	Precision  int
	Logger     ports.Logger
	Normalizer ports.Normalizer
}

// Option defines a functional option for configuring the scorer.
type Option func(*Config)

// WithThreshold sets a custom pass/fail threshold.
func WithThreshold(th float64) Option {
	return func(cfg *Config) {
		cfg.Threshold = th
	}
}

// WithPrecision sets a custom precision for rounding the final score.
func WithPrecision(p int) Option {
	return func(cfg *Config) {
		cfg.Precision = p
	}
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithNormalizer sets a custom normalizer for token alignment preprocessing.
func WithNormalizer(n ports.Normalizer) Option {
	return func(cfg *Config) {
		cfg.Normalizer = n
	}
}

// Default configuration values.
const (
	DefaultThreshold = 0.7
	DefaultPrecision = 4
)

// MixedScriptSimilarity provides methods to compute the mixed-script
// similarity metric using configurable parameters.
type MixedScriptSimilarity struct {
	calculator ports.SimilarityCalculator
	logger     ports.Logger
}

// New creates a new MixedScriptSimilarity with the provided functional
// options. If no logger is provided, a default logger is created.
func New(opts ...Option) (*MixedScriptSimilarity, error) {
	cfg := Config{
		Threshold: DefaultThreshold,
		Precision: DefaultPrecision,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Logger == nil {
		lg, err := createDefaultLogger()
		if err != nil {
			return nil, err
		}
		cfg.Logger = logger.FromExisting(lg)
	}
	if cfg.Normalizer == nil {
		cfg.Normalizer = normalizer.NewTokenNormalizer()
	}

	calc, err := composite.NewCalculator(composite.ScorerConfig{
		Threshold: cfg.Threshold,
		Precision: cfg.Precision,
	}, cfg.Logger, cfg.Normalizer)
	if err != nil {
		return nil, err
	}

	return &MixedScriptSimilarity{
		calculator: calc,
		logger:     cfg.Logger,
	}, nil
}

// Compute calculates the mixed-script similarity for the given string pair.
func (m *MixedScriptSimilarity) Compute(ctx context.Context, first, second string) Result {
	return m.calculator.Compute(ctx, first, second)
}
