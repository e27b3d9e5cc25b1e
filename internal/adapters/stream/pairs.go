// Package stream implements bulk scoring of string pairs read from a stream.
//
// The input is one pair per line, candidate and reference separated by a
// single tab. Each scored pair is written back as
// score<TAB>candidate<TAB>reference.
package stream

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/valyala/bytebufferpool"

	"github.com/baditaflorin/go_mixed_script_similarity/internal/ports"
)

// Constants for pair processing.
const (
	// DefaultBufferSize defines the initial size of the line scanner buffer.
	DefaultBufferSize = 64 * 1024 // 64KB

	// MaxLineSize caps a single input line.
	MaxLineSize = 1024 * 1024 // 1MB

	// ContextCheckFrequency defines how often to check for context cancellation.
	ContextCheckFrequency = 500 // lines
)

// Summary holds the outcome of a bulk scoring run.
type Summary struct {
	PairsScored    int
	LinesSkipped   int
	BytesProcessed int64
}

// Processor scores tab-separated string pairs from a reader.
type Processor struct {
	logger ports.Logger
	scorer ports.SimilarityCalculator
}

// NewProcessor creates a new pair processor backed by the given scorer.
func NewProcessor(logger ports.Logger, scorer ports.SimilarityCalculator) *Processor {
	return &Processor{
		logger: logger,
		scorer: scorer,
	}
}

// ProcessPairs reads candidate<TAB>reference lines from reader, scores each
// pair, and writes score<TAB>candidate<TAB>reference lines to writer.
//
// Lines without a tab separator are skipped and counted in the summary.
// Cancellation is checked periodically; a cancelled run returns the partial
// summary along with the context error.
func (p *Processor) ProcessPairs(ctx context.Context, reader io.Reader, writer io.Writer) (Summary, error) {
	var summary Summary

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, DefaultBufferSize), MaxLineSize)

	out := bytebufferpool.Get()
	defer bytebufferpool.Put(out)

	contextCheckCounter := 0
	for scanner.Scan() {
		contextCheckCounter++
		if contextCheckCounter >= ContextCheckFrequency {
			contextCheckCounter = 0
			select {
			case <-ctx.Done():
				p.logger.Warn("Pair processing cancelled by context", "error", ctx.Err())
				return summary, ctx.Err()
			default:
			}
		}

		line := scanner.Text()
		summary.BytesProcessed += int64(len(line)) + 1

		candidate, reference, ok := strings.Cut(line, "\t")
		if !ok {
			summary.LinesSkipped++
			p.logger.Warn("Skipping line without tab separator", "line", line)
			continue
		}

		result := p.scorer.Compute(ctx, candidate, reference)

		out.Reset()
		out.B = strconv.AppendFloat(out.B, result.Score, 'f', -1, 64)
		out.B = append(out.B, '\t')
		out.B = append(out.B, candidate...)
		out.B = append(out.B, '\t')
		out.B = append(out.B, reference...)
		out.B = append(out.B, '\n')
		if _, err := writer.Write(out.B); err != nil {
			return summary, fmt.Errorf("writing scored pair: %w", err)
		}
		summary.PairsScored++
	}
	if err := scanner.Err(); err != nil {
		return summary, fmt.Errorf("reading pairs: %w", err)
	}

	p.logger.Info("Finished pair processing",
		"pairs_scored", summary.PairsScored,
		"lines_skipped", summary.LinesSkipped,
		"bytes_processed", summary.BytesProcessed,
	)
	return summary, nil
}
