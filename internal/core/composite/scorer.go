// Package composite blends the Chinese-run and English-token similarities of
// a mixed-script string pair into one length-weighted score.
package composite

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/baditaflorin/go_mixed_script_similarity/internal/core/domain"
	"github.com/baditaflorin/go_mixed_script_similarity/internal/core/editdist"
	"github.com/baditaflorin/go_mixed_script_similarity/internal/core/partition"
	"github.com/baditaflorin/go_mixed_script_similarity/internal/core/tokenalign"
	"github.com/baditaflorin/go_mixed_script_similarity/internal/ports"
)

// ScorerConfig holds configuration for the mixed-script scorer.
type ScorerConfig struct {
	Threshold float64
	Precision int
}

// DefaultConfig returns a default configuration.
func DefaultConfig() ScorerConfig {
	return ScorerConfig{
		Threshold: 0.7,
		Precision: 4,
	}
}

// Validate checks if the configuration is valid.
func (c ScorerConfig) Validate() error {
	if c.Threshold < 0 || c.Threshold > 1 {
		return errors.New("threshold must be between 0 and 1")
	}
	if c.Precision < 0 {
		return errors.New("precision must not be negative")
	}
	return nil
}

// Calculator implements the mixed-script similarity calculation.
type Calculator struct {
	config  ScorerConfig
	logger  ports.Logger
	aligner *tokenalign.Aligner
}

// NewCalculator creates a new mixed-script similarity calculator.
func NewCalculator(config ScorerConfig, logger ports.Logger, normalizer ports.Normalizer) (*Calculator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Calculator{
		config:  config,
		logger:  logger,
		aligner: tokenalign.NewAligner(normalizer),
	}, nil
}

// Compute calculates the mixed-script similarity between two strings.
//
// Each input is partitioned into its Chinese and English portions. The
// Chinese portions are compared by normalized edit distance and the English
// portions by token alignment; the two scores are blended weighted by the
// larger Chinese character count and the larger English token count. A pair
// with neither Chinese nor English content scores 0.0 rather than dividing
// zero weights.
func (c *Calculator) Compute(ctx context.Context, first, second string) domain.Result {
	c.logger.Debug("Starting mixed-script similarity computation",
		"first", first,
		"second", second,
	)

	details := make(map[string]interface{})

	// Check context cancellation before the quadratic work.
	select {
	case <-ctx.Done():
		c.logger.Error("Computation cancelled", "error", ctx.Err())
		details["error"] = "computation cancelled"
		return domain.Result{
			Name:    "mixed_script_similarity",
			Score:   0,
			Passed:  false,
			Details: details,
		}
	default:
	}

	firstChi, firstEng := partition.Split(first)
	secondChi, secondEng := partition.Split(second)
	c.logger.Debug("Partitioned inputs",
		"first_chinese", firstChi,
		"first_english", firstEng,
		"second_chinese", secondChi,
		"second_english", secondEng,
	)

	chiWeight := maxInt(len([]rune(firstChi)), len([]rune(secondChi)))
	engWeight := maxInt(len(strings.Fields(firstEng)), len(strings.Fields(secondEng)))

	var chiScore float64
	if chiWeight > 0 {
		chiScore = editdist.Similarity(firstChi, secondChi)
	}
	var engScore float64
	if engWeight > 0 {
		engScore = c.aligner.Score(firstEng, secondEng)
	}

	details["chinese_weight"] = chiWeight
	details["english_weight"] = engWeight
	details["threshold"] = c.config.Threshold

	if chiWeight == 0 && engWeight == 0 {
		c.logger.Warn("Neither input contains Chinese or English text",
			"first", first,
			"second", second,
		)
		details["error"] = "no scoreable content"
		return domain.Result{
			Name:      "mixed_script_similarity",
			Score:     0,
			Passed:    false,
			Threshold: c.config.Threshold,
			Details:   details,
		}
	}

	score := (chiScore*float64(chiWeight) + engScore*float64(engWeight)) /
		float64(chiWeight+engWeight)

	// Round the score to the configured precision.
	factor := math.Pow(10, float64(c.config.Precision))
	score = math.Round(score*factor) / factor

	passed := score >= c.config.Threshold

	c.logger.Debug("Computed mixed-script similarity",
		"score", score,
		"passed", passed,
		"details", details,
	)

	return domain.Result{
		Name:          "mixed_script_similarity",
		Score:         score,
		Passed:        passed,
		ChineseScore:  chiScore,
		EnglishScore:  engScore,
		ChineseWeight: chiWeight,
		EnglishWeight: engWeight,
		Threshold:     c.config.Threshold,
		Details:       details,
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
