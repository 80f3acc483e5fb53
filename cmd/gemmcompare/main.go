// Command gemmcompare diffs two gemmbench CSV reports, cell by cell, and
// flags strategies that regressed beyond a threshold relative to the
// baseline.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gemmkit/gemmkit"
)

type cellStatus string

const (
	statusFaster cellStatus = "FASTER"
	statusSlower cellStatus = "SLOWER"
	statusSame   cellStatus = "SAME"
)

func main() {
	var (
		baselineFile = flag.String("baseline", "baseline.csv", "baseline results file")
		currentFile  = flag.String("current", "current.csv", "current results file")
		perfRegress  = flag.Float64("perf-regress", 1.1, "regression threshold (1.1 = 10% slower)")
		perfImprove  = flag.Float64("perf-improve", 0.9, "improvement threshold (0.9 = 10% faster)")
	)
	flag.Parse()

	baseline, err := loadReport(*baselineFile)
	if err != nil {
		log.Fatalf("Failed to load baseline: %v", err)
	}
	current, err := loadReport(*currentFile)
	if err != nil {
		log.Fatalf("Failed to load current results: %v", err)
	}

	regressions := compare(baseline, current, *perfRegress, *perfImprove)
	if regressions > 0 {
		fmt.Printf("\n%d regression(s) found\n", regressions)
		os.Exit(1)
	}
	fmt.Println("\nNo regressions")
}

func loadReport(path string) (*gemmkit.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return gemmkit.ReadCSV(f)
}

// compare prints one line per shared (size, strategy) cell and returns
// the regression count. Cells present in only one report are skipped:
// reports from different modes share no columns and that is fine.
func compare(baseline, current *gemmkit.Report, regress, improve float64) int {
	baseCells := index(baseline)
	regressions := 0

	fmt.Printf("%-8s %-20s %12s %12s %8s  %s\n",
		"Size", "Strategy", "Baseline(s)", "Current(s)", "Ratio", "Status")

	for i, size := range current.Sizes {
		for j, name := range current.Strategies {
			base, ok := baseCells[cellKey{size, name}]
			if !ok {
				continue
			}
			cur := current.Seconds[i][j]

			ratio := 0.0
			if base > 0 {
				ratio = cur / base
			}

			status := statusSame
			switch {
			case ratio > regress:
				status = statusSlower
				regressions++
			case ratio < improve && ratio > 0:
				status = statusFaster
			}

			fmt.Printf("%-8d %-20s %12.6f %12.6f %8.2f  %s\n",
				size, name, base, cur, ratio, status)
		}
	}
	return regressions
}

type cellKey struct {
	size     int
	strategy string
}

func index(report *gemmkit.Report) map[cellKey]float64 {
	cells := make(map[cellKey]float64)
	for i, size := range report.Sizes {
		for j, name := range report.Strategies {
			cells[cellKey{size, name}] = report.Seconds[i][j]
		}
	}
	return cells
}
