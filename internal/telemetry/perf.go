// Package telemetry writes loop throughput windows to CSV.
package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"

	"mad-life/internal/control"
)

// PerfRow is one throughput window as written to the CSV file.
type PerfRow struct {
	WindowEnd      string  `csv:"window_end"`
	Frames         int     `csv:"frames"`
	ElapsedMS      float64 `csv:"elapsed_ms"`
	LoopsPerSecond float64 `csv:"loops_per_sec"`
	AvgTickMS      float64 `csv:"avg_tick_ms"`
	AvgDrawMS      float64 `csv:"avg_draw_ms"`
}

// NewPerfRow converts a throughput window into its CSV row.
func NewPerfRow(t control.Throughput) PerfRow {
	return PerfRow{
		WindowEnd:      t.WindowEnd.UTC().Format(time.RFC3339Nano),
		Frames:         t.Frames,
		ElapsedMS:      millis(t.Elapsed),
		LoopsPerSecond: t.LoopsPerSecond,
		AvgTickMS:      millis(t.AvgTick),
		AvgDrawMS:      millis(t.AvgDraw),
	}
}

func millis(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}

// PerfWriter appends throughput windows to a CSV stream. The header is
// written with the first row.
type PerfWriter struct {
	w             io.Writer
	closer        io.Closer
	headerWritten bool
	rows          int
}

// NewPerfWriter writes rows to w. The caller keeps ownership of w.
func NewPerfWriter(w io.Writer) *PerfWriter {
	return &PerfWriter{w: w}
}

// NewPerfFile creates (or truncates) the CSV file at path. It returns nil
// when path is empty, which disables output.
func NewPerfFile(path string) (*PerfWriter, error) {
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating perf directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	return &PerfWriter{w: f, closer: f}, nil
}

// ReportThroughput implements control.Reporter.
func (p *PerfWriter) ReportThroughput(t control.Throughput) error {
	if p == nil {
		return nil
	}
	records := []PerfRow{NewPerfRow(t)}
	if !p.headerWritten {
		if err := gocsv.Marshal(records, p.w); err != nil {
			return fmt.Errorf("writing perf: %w", err)
		}
		p.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, p.w); err != nil {
			return fmt.Errorf("writing perf: %w", err)
		}
	}
	p.rows++
	return nil
}

// Rows returns the number of rows written.
func (p *PerfWriter) Rows() int {
	if p == nil {
		return 0
	}
	return p.rows
}

// Close closes the underlying file when the writer owns one.
func (p *PerfWriter) Close() error {
	if p == nil || p.closer == nil {
		return nil
	}
	err := p.closer.Close()
	p.closer = nil
	return err
}
