// Package store is the engine-facing face of whatever owns the corpus rows.
// The review GUI's database lives behind this interface; the engine itself
// never persists anything.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/adiwarna/sieve/internal/model"
)

// Store applies reviewer-accepted corrections back to the corpus.
type Store interface {
	// Apply replaces the labels of the record with the given id.
	Apply(ctx context.Context, id string, labels model.Labels) error
}

// Memory is an in-process Store, used by tests and by callers that want to
// collect accepted corrections before flushing them elsewhere.
type Memory struct {
	mu      sync.Mutex
	applied map[string]model.Labels
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{applied: make(map[string]model.Labels)}
}

// Apply records the correction. Applying twice for the same id overwrites —
// last write wins, matching reviewer behavior of re-editing a row.
func (m *Memory) Apply(_ context.Context, id string, labels model.Labels) error {
	if id == "" {
		return fmt.Errorf("store: apply: empty record id")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.applied[id] = labels
	return nil
}

// Applied returns the correction recorded for id, if any.
func (m *Memory) Applied(id string) (model.Labels, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.applied[id]
	return l, ok
}

// Len returns the number of corrected records.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.applied)
}
