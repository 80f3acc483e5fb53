package gemmkit

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sampleReport() *Report {
	return &Report{
		Strategies: []string{"MNK", "MKN"},
		Sizes:      []int{10, 20},
		Seconds: [][]float64{
			{0.000123, 0.000456},
			{0.001, 0.002},
		},
	}
}

func TestWriteCSVFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleReport()); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0] != "Matrix Size,MNK,MKN" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "10,0.000123,0.000456" {
		t.Errorf("row 1 = %q", lines[1])
	}
}

func TestReadCSVRoundTrip(t *testing.T) {
	want := sampleReport()

	var buf bytes.Buffer
	if err := WriteCSV(&buf, want); err != nil {
		t.Fatal(err)
	}
	got, err := ReadCSV(&buf)
	if err != nil {
		t.Fatal(err)
	}

	if len(got.Strategies) != 2 || got.Strategies[0] != "MNK" {
		t.Errorf("strategies = %v", got.Strategies)
	}
	if len(got.Sizes) != 2 || got.Sizes[1] != 20 {
		t.Errorf("sizes = %v", got.Sizes)
	}
	if got.Seconds[1][1] != 0.002 {
		t.Errorf("Seconds[1][1] = %v, want 0.002", got.Seconds[1][1])
	}
}

func TestReadCSVRejectsMalformed(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"header only column", "Matrix Size\n"},
		{"bad size", "Matrix Size,MNK\nten,0.5\n"},
		{"bad timing", "Matrix Size,MNK\n10,fast\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ReadCSV(strings.NewReader(tc.input)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSessionLogger(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewSessionLogger(dir, "unit")
	if err != nil {
		t.Fatal(err)
	}

	logger.Log(RunRecord{Size: 10, Strategy: "MNK", Runs: 3, Seconds: 0.001})
	logger.Log(RunRecord{Size: 20, Strategy: "MNK", Runs: 3, Seconds: 0.004})

	if filepath.Dir(logger.Path()) != dir {
		t.Errorf("session file %q not in %q", logger.Path(), dir)
	}

	data, err := os.ReadFile(logger.Path())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\"size\": 20") {
		t.Errorf("session file missing second record: %s", data)
	}
}
