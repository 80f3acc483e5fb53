// Command gemmbench sweeps the dense matrix-multiply kernel family over
// a list of square matrix sizes and writes the timing table as CSV.
//
// Two modes select the strategy columns:
//
//	-mode orders   times all six naive loop orderings
//	-mode opt      times MNK against the blocked, multithreaded and
//	               combined variants
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/gemmkit/gemmkit"
)

func main() {
	var (
		mode      = flag.String("mode", "orders", "benchmark mode: orders or opt")
		workers   = flag.Int("threads", runtime.NumCPU(), "worker count for the multithreaded variants")
		blockSize = flag.Int("block", gemmkit.DefaultBlockSize(), "block size for the blocked variants")
		runs      = flag.Int("runs", gemmkit.DefaultNumRuns, "repetitions averaged per timing")
		seed      = flag.Int64("seed", time.Now().UnixNano(), "seed for matrix contents")
		sizesFlag = flag.String("sizes", "", "comma-separated square sizes (default 10..100,200,300,400)")
		outFile   = flag.String("out", "", "CSV output path (default gemm_times.csv or mnk_optimized_times.csv by mode)")
		logDir    = flag.String("json", "", "directory for the JSON session log (disabled when empty)")
	)
	flag.Parse()

	// Invalid thread/block values are corrected, never rejected.
	if *workers < 1 {
		*workers = 1
	}
	if *blockSize < 1 {
		*blockSize = 1
	}

	var strategies []gemmkit.Strategy
	out := *outFile
	switch *mode {
	case "orders":
		strategies = gemmkit.LoopOrderStrategies()
		if out == "" {
			out = "gemm_times.csv"
		}
	case "opt":
		strategies = gemmkit.OptimizedStrategies(*workers, *blockSize)
		if out == "" {
			out = "mnk_optimized_times.csv"
		}
		fmt.Printf("Running with %d threads and block size %d\n", *workers, *blockSize)
	default:
		log.Fatalf("unknown mode %q (want orders or opt)", *mode)
	}

	sizes, err := parseSizes(*sizesFlag)
	if err != nil {
		log.Fatalf("bad -sizes value: %v", err)
	}

	fmt.Println(gemmkit.CPUInfo())

	cfg := gemmkit.RunConfig{
		Sizes: sizes,
		Runs:  *runs,
		Seed:  *seed,
		Logf: func(format string, args ...any) {
			fmt.Printf(format+"\n", args...)
		},
	}

	if *logDir != "" {
		session, err := gemmkit.NewSessionLogger(*logDir, "gemmbench_"+*mode)
		if err != nil {
			log.Fatalf("failed to open session log: %v", err)
		}
		cfg.Observe = session.Log
		fmt.Printf("Session log: %s\n", session.Path())
	}

	report, err := gemmkit.Run(cfg, strategies)
	if err != nil {
		log.Fatalf("benchmark failed: %v", err)
	}

	f, err := os.Create(out)
	if err != nil {
		log.Fatalf("failed to create results file: %v", err)
	}
	defer f.Close()

	if err := gemmkit.WriteCSV(f, report); err != nil {
		log.Fatalf("failed to write results: %v", err)
	}

	fmt.Printf("\nBenchmarking complete. Results saved to %s\n", out)
}

// parseSizes turns "10,20,40" into []int{10, 20, 40}. An empty string
// selects the default sweep.
func parseSizes(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, part := range parts {
		size, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		if size < 1 {
			return nil, fmt.Errorf("size must be positive, got %d", size)
		}
		sizes = append(sizes, size)
	}
	return sizes, nil
}
