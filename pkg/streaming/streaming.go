// Package streaming exposes bulk pair scoring over io.Reader/io.Writer.
package streaming

import (
	"context"
	"io"

	"github.com/baditaflorin/l"

	"github.com/baditaflorin/go_mixed_script_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_mixed_script_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_mixed_script_similarity/internal/adapters/stream"
	"github.com/baditaflorin/go_mixed_script_similarity/internal/core/composite"
	"github.com/baditaflorin/go_mixed_script_similarity/internal/ports"
)

// Summary reports the outcome of a bulk scoring run.
type Summary = stream.Summary

// PairScorer scores tab-separated candidate/reference pairs from a stream.
type PairScorer struct {
	processor *stream.Processor
	logger    ports.Logger
}

// Option defines a functional option for configuring the PairScorer.
type Option func(*config)

type config struct {
	Threshold  float64
	Precision  int
	Logger     ports.Logger
	Normalizer ports.Normalizer
}

// WithThreshold sets a custom pass/fail threshold for the underlying scorer.
func WithThreshold(th float64) Option {
	return func(cfg *config) {
		cfg.Threshold = th
	}
}

// WithPrecision sets a custom rounding precision for scores.
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

// New creates a new PairScorer instance.
func New(opts ...Option) (*PairScorer, error) {
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

	return &PairScorer{
		processor: stream.NewProcessor(cfg.Logger, calculator),
		logger:    cfg.Logger,
	}, nil
}

// ScorePairs reads candidate<TAB>reference lines from reader, scores each
// pair, and writes score<TAB>candidate<TAB>reference lines to writer.
func (p *PairScorer) ScorePairs(ctx context.Context, reader io.Reader, writer io.Writer) (Summary, error) {
	return p.processor.ProcessPairs(ctx, reader, writer)
}
