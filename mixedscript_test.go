// mixedscript_test.go
package mixedscript

import (
	"context"
	"testing"

	"github.com/baditaflorin/go_mixed_script_similarity/internal/adapters/logger"
)

// withNopLogger replaces the default async logger so tests stay silent.
func withNopLogger() Option {
	return func(cfg *Config) {
		cfg.Logger = logger.NewNopLogger()
	}
}

func newScorer(t *testing.T, opts ...Option) *MixedScriptSimilarity {
	t.Helper()
	m, err := New(append([]Option{withNopLogger()}, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestComputeWithDefaults(t *testing.T) {
	m := newScorer(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		first    string
		second   string
		expected bool // whether the result should pass based on default threshold
	}{
		{
			name:   "Identical mixed strings",
			first:  "香港大學 HKU",
			second: "香港大學 HKU",
			// Identical content should pass.
			expected: true,
		},
		{
			name:     "Close chinese names",
			first:    "香港大學",
			second:   "香港大学學",
			expected: true,
		},
		{
			name:     "Unrelated english names",
			first:    "STANFORD",
			second:   "OXFORD UNIVERSITY PRESS",
			expected: false,
		},
		{
			name:   "Both empty",
			first:  "",
			second: "",
			// No scoreable content should fail.
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := m.Compute(ctx, tc.first, tc.second)
			if result.Passed != tc.expected {
				t.Errorf("expected passed=%v, got %v, details: %v", tc.expected, result.Passed, result.Details)
			}
		})
	}
}

func TestComputeWithCustomThreshold(t *testing.T) {
	m := newScorer(t, WithThreshold(0.4))

	result := m.Compute(context.Background(), "香港大學", "香港中大")
	if result.Score != 0.5 {
		t.Errorf("Score = %v, want 0.5", result.Score)
	}
	if !result.Passed {
		t.Errorf("expected 0.5 to pass threshold 0.4, details: %v", result.Details)
	}
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	if _, err := New(withNopLogger(), WithThreshold(2.0)); err == nil {
		t.Fatal("New with threshold 2.0 returned nil error")
	}
}
