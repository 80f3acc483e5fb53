package gemmkit

import (
	"errors"
	"testing"
)

func TestRunProducesFullTable(t *testing.T) {
	var observed []RunRecord
	cfg := RunConfig{
		Sizes: []int{4, 8},
		Runs:  2,
		Seed:  42,
		Observe: func(rec RunRecord) {
			observed = append(observed, rec)
		},
	}

	strategies := OptimizedStrategies(2, 4)
	report, err := Run(cfg, strategies)
	if err != nil {
		t.Fatal(err)
	}

	if len(report.Sizes) != 2 || len(report.Strategies) != len(strategies) {
		t.Fatalf("report shape %dx%d, want 2x%d",
			len(report.Sizes), len(report.Strategies), len(strategies))
	}
	for i, row := range report.Seconds {
		if len(row) != len(strategies) {
			t.Fatalf("row %d has %d cells", i, len(row))
		}
		for j, sec := range row {
			if sec < 0 {
				t.Errorf("negative timing at (%d, %d): %v", i, j, sec)
			}
		}
	}

	if want := 2 * len(strategies); len(observed) != want {
		t.Errorf("observed %d records, want %d", len(observed), want)
	}
	if len(observed) > 0 && observed[0].Runs != 2 {
		t.Errorf("record runs = %d, want 2", observed[0].Runs)
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	if _, err := Run(RunConfig{}, nil); err == nil {
		t.Error("Run with no strategies succeeded")
	}

	_, err := Run(RunConfig{Sizes: []int{-1}}, LoopOrderStrategies())
	if err == nil {
		t.Fatal("Run with negative size succeeded")
	}
	var herr *HarnessError
	if !errors.As(err, &herr) {
		t.Fatalf("error %T is not a *HarnessError", err)
	}
	if herr.Type != ErrTypeInvalidArg {
		t.Errorf("error type = %v, want InvalidArgument", herr.Type)
	}
}

func TestRunClampsRuns(t *testing.T) {
	report, err := Run(RunConfig{Sizes: []int{3}, Runs: -5}, LoopOrderStrategies())
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Seconds) != 1 {
		t.Fatalf("report rows = %d, want 1", len(report.Seconds))
	}
}

func TestDefaultSizes(t *testing.T) {
	sizes := DefaultSizes()
	want := []int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 200, 300, 400}

	if len(sizes) != len(want) {
		t.Fatalf("got %d sizes, want %d", len(sizes), len(want))
	}
	for i := range want {
		if sizes[i] != want[i] {
			t.Errorf("sizes[%d] = %d, want %d", i, sizes[i], want[i])
		}
	}
}

func TestDefaultBlockSize(t *testing.T) {
	size := DefaultBlockSize()
	if size < 1 {
		t.Fatalf("block size %d", size)
	}
	// Three tiles of the chosen size must fit in the L1 budget.
	if 3*size*size*float64Size > L1CacheSize {
		t.Errorf("block size %d overflows the L1 working-set budget", size)
	}
}
