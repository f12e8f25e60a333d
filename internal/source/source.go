// Package source defines where audit records come from. The storage layer
// behind a source (files today, a database in the review GUI) is outside the
// engine; the engine only requires a stable iteration order.
package source

import (
	"context"

	"github.com/adiwarna/sieve/internal/model"
)

// Source supplies a closed, finite corpus of records.
type Source interface {
	// Records reads the whole corpus in its stable input order. The second
	// return value counts lines that failed to parse and were skipped.
	Records(ctx context.Context) ([]model.Record, int, error)

	// Path identifies the underlying corpus. Used for provenance in the
	// stats report and for the path-identity check that disables leakage
	// detection when a corpus is compared against itself.
	Path() string
}
