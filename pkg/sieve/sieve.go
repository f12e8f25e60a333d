package sieve

import (
	"context"
	"fmt"
	"sort"

	"github.com/adiwarna/sieve/internal/config"
	"github.com/adiwarna/sieve/internal/engine"
	"github.com/adiwarna/sieve/internal/engine/labelspace"
	"github.com/adiwarna/sieve/internal/model"
	"github.com/adiwarna/sieve/internal/source"
	"github.com/adiwarna/sieve/internal/source/memory"
	"github.com/adiwarna/sieve/internal/store"
)

// Auditor audits in-memory record sets against a fixed configuration.
// Construction compiles every rule pattern; create once, reuse across runs.
// Safe for concurrent use.
type Auditor struct {
	eng    *engine.Engine
	events labelspace.Space
}

// New creates an Auditor. With no options it carries the built-in label
// spaces and rule set.
func New(opts ...Option) (*Auditor, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("sieve: %w", err)
	}
	for _, m := range o.mutators {
		m(&cfg)
	}

	var engOpts []engine.Option
	if o.workers > 0 {
		engOpts = append(engOpts, engine.WithWorkers(o.workers))
	}
	eng, err := engine.New(cfg, engOpts...)
	if err != nil {
		return nil, fmt.Errorf("sieve: %w", err)
	}
	return &Auditor{eng: eng, events: labelspace.New(cfg.Labels.Events)}, nil
}

// Audit runs the engine over records and returns the priority-ordered queue.
// Records that trigger nothing are absent from the result.
func (a *Auditor) Audit(ctx context.Context, records []Record) ([]Item, error) {
	return a.audit(ctx, records, nil)
}

// AuditWithReference additionally flags records whose normalized text also
// appears in reference (cross-split leakage).
func (a *Auditor) AuditWithReference(ctx context.Context, records, reference []Record) ([]Item, error) {
	return a.audit(ctx, records, reference)
}

func (a *Auditor) audit(ctx context.Context, records, reference []Record) ([]Item, error) {
	primary := memory.New("memory:primary", recordsToModel(records))
	var ref source.Source
	if reference != nil {
		ref = memory.New("memory:reference", recordsToModel(reference))
	}

	result, err := a.eng.Audit(ctx, primary, ref)
	if err != nil {
		return nil, fmt.Errorf("sieve: %w", err)
	}

	items := make([]Item, len(result.Queue))
	for i, q := range result.Queue {
		items[i] = itemFromQueue(q)
	}
	return items, nil
}

// Store applies reviewer-accepted corrections back to the host's storage.
type Store interface {
	Apply(ctx context.Context, id string, labels Labels) error
}

// ApplyAccepted pushes each item's suggestions into st, merging them with
// the item's current labels: suggested intent/urgency replace the current
// values when present, suggested events are added to the current set. Items
// without suggestions are skipped.
func (a *Auditor) ApplyAccepted(ctx context.Context, st Store, items []Item) error {
	for _, it := range items {
		if !it.HasSuggestion() {
			continue
		}
		labels := Labels{
			Intent:  it.Intent,
			Urgency: it.Urgency,
			Events:  a.events.CanonicalOrder(append(append([]string(nil), it.Events...), it.SuggestEvents...)),
		}
		if it.SuggestIntent != "" {
			labels.Intent = it.SuggestIntent
		}
		if it.SuggestUrgency != "" {
			labels.Urgency = it.SuggestUrgency
		}
		if err := st.Apply(ctx, it.ID, labels); err != nil {
			return fmt.Errorf("sieve: apply %s: %w", it.ID, err)
		}
	}
	return nil
}

// MemoryStore collects accepted corrections in memory.
type MemoryStore struct {
	inner *store.Memory
}

// NewMemoryStore creates an empty in-memory correction store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{inner: store.NewMemory()}
}

// Apply records the correction for id. Last write wins.
func (m *MemoryStore) Apply(ctx context.Context, id string, labels Labels) error {
	return m.inner.Apply(ctx, id, model.Labels{
		Intent:  labels.Intent,
		Urgency: labels.Urgency,
		Events:  labels.Events,
	})
}

// Applied returns the correction recorded for id, if any.
func (m *MemoryStore) Applied(id string) (Labels, bool) {
	l, ok := m.inner.Applied(id)
	if !ok {
		return Labels{}, false
	}
	return Labels{Intent: l.Intent, Urgency: l.Urgency, Events: l.Events}, true
}

// Len returns the number of corrected records.
func (m *MemoryStore) Len() int { return m.inner.Len() }

func itemFromQueue(q model.QueueItem) Item {
	reasons := make([]string, 0, len(q.Reasons))
	for _, r := range q.Reasons {
		reasons = append(reasons, r.Code)
	}
	sort.Strings(reasons)
	hits := append([]string(nil), q.KeywordHits...)
	sort.Strings(hits)
	return Item{
		Ordinal:        q.Ordinal,
		ID:             q.ID,
		Text:           q.Text,
		Intent:         q.Intent,
		Urgency:        q.Urgency,
		Events:         q.Events,
		Reasons:        reasons,
		KeywordHits:    hits,
		SuggestIntent:  q.SuggestIntent,
		SuggestUrgency: q.SuggestUrgency,
		SuggestEvents:  q.SuggestEvents,
	}
}
