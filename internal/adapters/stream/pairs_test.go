package stream

import (
	"context"
	"strings"
	"testing"

	"github.com/baditaflorin/go_mixed_script_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_mixed_script_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_mixed_script_similarity/internal/core/composite"
)

func newProcessor(t *testing.T) *Processor {
	t.Helper()
	calc, err := composite.NewCalculator(
		composite.DefaultConfig(),
		logger.NewNopLogger(),
		normalizer.NewTokenNormalizer(),
	)
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}
	return NewProcessor(logger.NewNopLogger(), calc)
}

func TestProcessPairs(t *testing.T) {
	p := newProcessor(t)

	input := strings.Join([]string{
		"香港大學 HKU\t香港大學 HKU",
		"ABC\tXYZ",
		"line without separator",
		"NEW YORK\tNEW YORK CITY",
	}, "\n")

	var out strings.Builder
	summary, err := p.ProcessPairs(context.Background(), strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("ProcessPairs: %v", err)
	}
	if summary.PairsScored != 3 {
		t.Errorf("PairsScored = %d, want 3", summary.PairsScored)
	}
	if summary.LinesSkipped != 1 {
		t.Errorf("LinesSkipped = %d, want 1", summary.LinesSkipped)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("output lines = %d, want 3: %q", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "1\t香港大學 HKU\t") {
		t.Errorf("identical pair line = %q, want score 1", lines[0])
	}
	if !strings.HasPrefix(lines[1], "0\tABC\t") {
		t.Errorf("disjoint pair line = %q, want score 0", lines[1])
	}
}

func TestProcessPairsEmptyInput(t *testing.T) {
	p := newProcessor(t)

	var out strings.Builder
	summary, err := p.ProcessPairs(context.Background(), strings.NewReader(""), &out)
	if err != nil {
		t.Fatalf("ProcessPairs: %v", err)
	}
	if summary.PairsScored != 0 || out.Len() != 0 {
		t.Errorf("empty input produced %d pairs, output %q", summary.PairsScored, out.String())
	}
}

func TestProcessPairsCancellation(t *testing.T) {
	p := newProcessor(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Enough lines to trip the periodic context check.
	var sb strings.Builder
	for i := 0; i < ContextCheckFrequency+10; i++ {
		sb.WriteString("香港\t香港\n")
	}

	var out strings.Builder
	_, err := p.ProcessPairs(ctx, strings.NewReader(sb.String()), &out)
	if err == nil {
		t.Fatal("ProcessPairs with cancelled context returned nil error")
	}
}
