package gemmkit

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

// RunRecord captures the result of one (size, strategy) benchmark cell.
type RunRecord struct {
	Size      int       `json:"size"`
	Strategy  string    `json:"strategy"`
	Runs      int       `json:"runs"`
	Seconds   float64   `json:"seconds"`
	Timestamp time.Time `json:"timestamp"`
}

// SessionLogger collects RunRecords for one benchmark session and keeps
// a timestamped JSON file on disk current as records arrive, so a
// crashed sweep still leaves the completed cells behind.
type SessionLogger struct {
	mu          sync.Mutex
	records     []RunRecord
	sessionFile string
}

// NewSessionLogger creates the log directory if needed and opens a new
// session file named after sessionName and the current time.
func NewSessionLogger(logDir, sessionName string) (*SessionLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, NewIOError("NewSessionLogger", "failed to create log directory", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	l := &SessionLogger{
		sessionFile: filepath.Join(logDir,
			fmt.Sprintf("%s_%s.json", sessionName, timestamp)),
	}
	if err := l.flush(); err != nil {
		return nil, err
	}
	return l, nil
}

// Log appends one record and flushes the session file.
func (l *SessionLogger) Log(rec RunRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec.Timestamp = time.Now()
	l.records = append(l.records, rec)

	// Flush to disk immediately to avoid losing data on crash.
	l.flush()
}

// Path returns the session file location.
func (l *SessionLogger) Path() string {
	return l.sessionFile
}

// flush writes all records to the session file. Caller must hold mu
// (or have exclusive access during construction).
func (l *SessionLogger) flush() error {
	data, err := json.MarshalIndent(l.records, "", "  ")
	if err != nil {
		return NewIOError("flush", "failed to marshal records", err)
	}
	if err := os.WriteFile(l.sessionFile, data, 0644); err != nil {
		return NewIOError("flush", "failed to write session file", err)
	}
	return nil
}

// WriteCSV writes a report in the harness's table format: a header of
// "Matrix Size" followed by one column per strategy, then one row per
// size with mean seconds printed to microsecond precision. Plotting
// scripts consume exactly this shape.
func WriteCSV(w io.Writer, report *Report) error {
	cw := csv.NewWriter(w)

	header := append([]string{"Matrix Size"}, report.Strategies...)
	if err := cw.Write(header); err != nil {
		return NewIOError("WriteCSV", "failed to write header", err)
	}

	for i, size := range report.Sizes {
		row := make([]string, 0, len(report.Strategies)+1)
		row = append(row, strconv.Itoa(size))
		for _, sec := range report.Seconds[i] {
			row = append(row, strconv.FormatFloat(sec, 'f', 6, 64))
		}
		if err := cw.Write(row); err != nil {
			return NewIOError("WriteCSV", "failed to write row", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return NewIOError("WriteCSV", "failed to flush", err)
	}
	return nil
}

// ReadCSV parses a report previously written by WriteCSV. Used by the
// comparison tool to diff a current sweep against a baseline.
func ReadCSV(r io.Reader) (*Report, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, NewIOError("ReadCSV", "failed to parse CSV", err)
	}
	if len(rows) == 0 || len(rows[0]) < 2 {
		return nil, NewIOError("ReadCSV", "missing or short header row", nil)
	}

	report := &Report{Strategies: rows[0][1:]}
	for _, row := range rows[1:] {
		if len(row) != len(rows[0]) {
			return nil, NewIOError("ReadCSV",
				fmt.Sprintf("row has %d columns, want %d", len(row), len(rows[0])), nil)
		}
		size, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, NewIOError("ReadCSV", "bad size value "+row[0], err)
		}
		secs := make([]float64, len(row)-1)
		for i, cell := range row[1:] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, NewIOError("ReadCSV", "bad timing value "+cell, err)
			}
			secs[i] = v
		}
		report.Sizes = append(report.Sizes, size)
		report.Seconds = append(report.Seconds, secs)
	}
	return report, nil
}
