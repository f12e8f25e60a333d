// Package csvfile writes the review queue as a CSV file, creating parent
// directories as needed.
package csvfile

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adiwarna/sieve/internal/model"
	"github.com/adiwarna/sieve/internal/output"
)

const defaultBufSize = 64 * 1024 // 64KB

// Output writes queue rows to a CSV file with buffered I/O.
type Output struct {
	f   *os.File
	buf *bufio.Writer
	w   *csv.Writer
}

// New creates the file (truncating any previous queue) and writes the
// header row immediately.
func New(path string) (*Output, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("csv output: mkdir %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv output: create %s: %w", path, err)
	}
	buf := bufio.NewWriterSize(f, defaultBufSize)
	w := csv.NewWriter(buf)
	if err := w.Write(output.Header); err != nil {
		f.Close()
		return nil, fmt.Errorf("csv output: header: %w", err)
	}
	return &Output{f: f, buf: buf, w: w}, nil
}

// Write appends one queue row.
func (o *Output) Write(_ context.Context, item model.QueueItem) error {
	if err := o.w.Write(output.Row(item)); err != nil {
		return fmt.Errorf("csv output: write: %w", err)
	}
	return nil
}

// Close flushes buffers and closes the file.
func (o *Output) Close() error {
	o.w.Flush()
	if err := o.w.Error(); err != nil {
		o.f.Close()
		return fmt.Errorf("csv output: flush: %w", err)
	}
	if err := o.buf.Flush(); err != nil {
		o.f.Close()
		return fmt.Errorf("csv output: flush: %w", err)
	}
	return o.f.Close()
}
