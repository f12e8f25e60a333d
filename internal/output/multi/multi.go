package multi

import (
	"context"
	"errors"

	"github.com/adiwarna/sieve/internal/model"
	"github.com/adiwarna/sieve/internal/output"
)

// Multi fans out queue rows to multiple output.Output implementations.
// If one output fails, the remaining outputs still receive the row.
type Multi struct {
	outputs []output.Output
}

// New creates a Multi that fans out to the given outputs.
func New(outputs ...output.Output) *Multi {
	return &Multi{outputs: outputs}
}

// Write delivers the row to every wrapped output, collecting errors.
func (m *Multi) Write(ctx context.Context, item model.QueueItem) error {
	var errs []error
	for _, o := range m.outputs {
		if err := o.Write(ctx, item); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close calls Close on every wrapped output, collecting errors.
func (m *Multi) Close() error {
	var errs []error
	for _, o := range m.outputs {
		if err := o.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
