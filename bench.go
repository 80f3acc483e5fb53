package gemmkit

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/stat"
)

// RunConfig controls one benchmark sweep. Zero values fall back to the
// package defaults, matching the reference harness: square sizes from
// DefaultSizes, DefaultNumRuns repetitions averaged per timing.
type RunConfig struct {
	// Sizes lists the square matrix orders to sweep (m = n = k).
	Sizes []int

	// Runs is the number of repetitions averaged per (size, strategy)
	// cell. Values below 1 clamp to 1.
	Runs int

	// Seed initializes the generator that fills A and B with uniform
	// [0, 1) values once per size.
	Seed int64

	// Logf, when non-nil, receives human-readable progress lines.
	Logf func(format string, args ...any)

	// Observe, when non-nil, is called with every individual cell
	// result as it completes. The session logger hangs off this hook.
	Observe func(RunRecord)
}

// Report is a completed sweep: one row per size, one mean-seconds column
// per strategy. This row/column shape is the file-format contract that
// downstream plotting scripts consume.
type Report struct {
	Strategies []string
	Sizes      []int
	// Seconds[i][j] is the mean elapsed seconds for Sizes[i] under
	// Strategies[j].
	Seconds [][]float64
}

// Run executes every strategy at every configured size. For each size it
// allocates and randomizes A and B once, then times each strategy over
// cfg.Runs repetitions, zeroing C before every repetition so each call
// accumulates into a fresh target. Allocation failure for a size aborts
// the sweep before any kernel runs at that size.
func Run(cfg RunConfig, strategies []Strategy) (*Report, error) {
	if len(strategies) == 0 {
		return nil, NewInvalidArgError("Run", "no strategies given")
	}
	sizes := cfg.Sizes
	if len(sizes) == 0 {
		sizes = DefaultSizes()
	}
	runs := cfg.Runs
	if runs < 1 {
		runs = 1
	}
	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	report := &Report{
		Sizes:   sizes,
		Seconds: make([][]float64, len(sizes)),
	}
	for _, s := range strategies {
		report.Strategies = append(report.Strategies, s.Name)
	}

	samples := make([]float64, runs)
	for si, size := range sizes {
		a, b, c, err := allocateSquare(size)
		if err != nil {
			return nil, err
		}
		a.Randomize(rng)
		b.Randomize(rng)

		logf("Testing matrices of size %d x %d...", size, size)

		row := make([]float64, len(strategies))
		for sj, strategy := range strategies {
			for run := 0; run < runs; run++ {
				c.Zero()
				start := time.Now()
				strategy.Run(a, b, c)
				samples[run] = time.Since(start).Seconds()
			}
			mean := stat.Mean(samples, nil)
			row[sj] = mean
			logf("  %s: %.6f s", strategy.Name, mean)
			if cfg.Observe != nil {
				cfg.Observe(RunRecord{
					Size:     size,
					Strategy: strategy.Name,
					Runs:     runs,
					Seconds:  mean,
				})
			}
		}
		report.Seconds[si] = row
	}
	return report, nil
}

// allocateSquare allocates the A, B, C triple for one square size,
// failing before any kernel sees the buffers if the size is invalid or
// the element count does not fit in an int.
func allocateSquare(size int) (a, b, c *Matrix, err error) {
	if size < 1 {
		return nil, nil, nil, NewInvalidArgError("allocateSquare",
			fmt.Sprintf("matrix size must be positive, got %d", size))
	}
	if size > math.MaxInt/size/float64Size {
		return nil, nil, nil, NewMemoryError("allocateSquare",
			fmt.Sprintf("matrix size %d overflows the address space", size), nil)
	}
	return NewMatrix(size, size), NewMatrix(size, size), NewMatrix(size, size), nil
}
