// Package warmup pre-exercises similarity calculators so the first real
// request does not pay for pool population and allocator ramp-up.
package warmup

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/baditaflorin/go_mixed_script_similarity/internal/ports"
)

// Config defines configuration for warming up the system.
type Config struct {
	// Number of concurrent warmup routines to run.
	Concurrency int
	// Number of iterations per routine.
	Iterations int
	// Warmup duration (0 means no time limit).
	Duration time.Duration
	// Whether to perform GC after warmup.
	ForceGC bool
}

// DefaultConfig returns the default warmup configuration.
func DefaultConfig() Config {
	return Config{
		Concurrency: runtime.NumCPU(),
		Iterations:  1000,
		Duration:    2 * time.Second,
		ForceGC:     true,
	}
}

// Representative mixed-script pairs covering the scorer's branches.
var samplePairs = [][2]string{
	{"香港大學 The University of Hong Kong", "香港大學 HKU"},
	{"NEW YORK UNIVERSITY", "NEW YORK UNIV"},
	{"中文大學", "中文大学堂"},
	{"", "placeholder text"},
}

// Manager handles warmup of registered calculators.
type Manager struct {
	logger      ports.Logger
	calculators []ports.SimilarityCalculator
	config      Config
}

// NewManager creates a new warmup manager.
func NewManager(logger ports.Logger, config Config) *Manager {
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterCalculator adds a calculator to be warmed up.
func (m *Manager) RegisterCalculator(calc ports.SimilarityCalculator) {
	m.calculators = append(m.calculators, calc)
}

// WarmUp runs the registered calculators over the sample pairs until the
// iteration count or the configured duration is reached.
func (m *Manager) WarmUp(ctx context.Context) {
	start := time.Now()
	m.logger.Info("Starting warmup",
		"concurrency", m.config.Concurrency,
		"iterations", m.config.Iterations,
		"calculators", len(m.calculators),
	)

	if m.config.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.Duration)
		defer cancel()
	}

	var wg sync.WaitGroup
	for w := 0; w < m.config.Concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < m.config.Iterations; i++ {
				select {
				case <-ctx.Done():
					return
				default:
				}
				pair := samplePairs[i%len(samplePairs)]
				for _, calc := range m.calculators {
					calc.Compute(ctx, pair[0], pair[1])
				}
			}
		}()
	}
	wg.Wait()

	if m.config.ForceGC {
		runtime.GC()
	}
	m.logger.Info("Warmup complete", "elapsed", time.Since(start))
}
