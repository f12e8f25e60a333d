// Package stdout writes the review queue as CSV on standard output, for
// piping into other tools.
package stdout

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/adiwarna/sieve/internal/model"
	"github.com/adiwarna/sieve/internal/output"
)

// Output writes CSV queue rows to stdout.
type Output struct {
	w           *csv.Writer
	wroteHeader bool
}

// New creates a stdout Output. The header row is always emitted — on the
// first Write, or on Close for an empty queue — since column presence is part
// of the output contract.
func New() *Output {
	return &Output{w: csv.NewWriter(os.Stdout)}
}

func (o *Output) writeHeader() error {
	if o.wroteHeader {
		return nil
	}
	o.wroteHeader = true
	if err := o.w.Write(output.Header); err != nil {
		return fmt.Errorf("stdout output: header: %w", err)
	}
	return nil
}

func (o *Output) Write(_ context.Context, item model.QueueItem) error {
	if err := o.writeHeader(); err != nil {
		return err
	}
	if err := o.w.Write(output.Row(item)); err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	if err := o.writeHeader(); err != nil {
		return err
	}
	o.w.Flush()
	if err := o.w.Error(); err != nil {
		return fmt.Errorf("stdout output: flush: %w", err)
	}
	return nil
}
