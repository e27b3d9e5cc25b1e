// Package mixed exposes the mixed-script similarity scorer behind a small
// facade with functional options.
package mixed

import (
	"context"

	"github.com/baditaflorin/l"

	"github.com/baditaflorin/go_mixed_script_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_mixed_script_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_mixed_script_similarity/internal/core/composite"
	"github.com/baditaflorin/go_mixed_script_similarity/internal/core/domain"
	"github.com/baditaflorin/go_mixed_script_similarity/internal/ports"
)

// Scorer provides methods to compute the mixed-script similarity metric.
type Scorer struct {
	calculator ports.SimilarityCalculator
	logger     ports.Logger
}

// Option defines a functional option for configuring the Scorer.
type Option func(*config)

type config struct {
	Threshold  float64
	Precision  int
	Logger     ports.Logger
	Normalizer ports.Normalizer
}

// WithThreshold sets a custom pass/fail threshold.
func WithThreshold(th float64) Option {
	return func(cfg *config) {
		cfg.Threshold = th
	}
}

// WithPrecision sets a custom precision for rounding the final score.
func WithPrecision(p int) Option {
	return func(cfg *config) {
		cfg.Precision = p
	}
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithNormalizer sets a custom normalizer for token alignment preprocessing.
func WithNormalizer(n ports.Normalizer) Option {
	return func(cfg *config) {
		cfg.Normalizer = n
	}
}

// New creates a new Scorer instance.
func New(opts ...Option) (*Scorer, error) {
	defaultConfig := composite.DefaultConfig()

	cfg := &config{
		Threshold: defaultConfig.Threshold,
		Precision: defaultConfig.Precision,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Logger == nil {
		var err error
		cfg.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}
	if cfg.Normalizer == nil {
		cfg.Normalizer = normalizer.NewFastTokenNormalizer()
	}

	calculator, err := composite.NewCalculator(composite.ScorerConfig{
		Threshold: cfg.Threshold,
		Precision: cfg.Precision,
	}, cfg.Logger, cfg.Normalizer)
	if err != nil {
		return nil, err
	}

	return &Scorer{
		calculator: calculator,
		logger:     cfg.Logger,
	}, nil
}

// Compute calculates the mixed-script similarity between two strings.
func (s *Scorer) Compute(ctx context.Context, first, second string) domain.Result {
	return s.calculator.Compute(ctx, first, second)
}
