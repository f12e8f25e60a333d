// Package memory is an in-process source for callers that already hold their
// records — the embedding API and tests.
package memory

import (
	"context"

	"github.com/adiwarna/sieve/internal/model"
	"github.com/adiwarna/sieve/internal/source"
)

// Source serves a fixed record slice.
type Source struct {
	name    string
	records []model.Record
}

var _ source.Source = (*Source)(nil)

// New creates a memory source. Ordinals are assigned from slice position if
// every record still has the zero ordinal. name stands in for a path; two
// memory sources with the same name are treated as the same corpus by the
// leakage path-identity check.
func New(name string, records []model.Record) *Source {
	assigned := false
	for _, r := range records {
		if r.Ordinal != 0 {
			assigned = true
			break
		}
	}
	if !assigned {
		for i := range records {
			records[i].Ordinal = i
		}
	}
	return &Source{name: name, records: records}
}

func (s *Source) Records(_ context.Context) ([]model.Record, int, error) {
	return s.records, 0, nil
}

func (s *Source) Path() string { return s.name }
