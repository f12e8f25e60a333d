// Package stats tallies label distributions and problem counts across a run.
// Reporting only — no engine decision reads these numbers.
package stats

import (
	"time"

	"github.com/google/uuid"

	"github.com/adiwarna/sieve/internal/engine/labelspace"
	"github.com/adiwarna/sieve/internal/model"
)

// Collector accumulates counts while the engine walks the corpus.
// Not safe for concurrent use; the engine feeds it from a single goroutine.
type Collector struct {
	intent  labelspace.Space
	urgency labelspace.Space
	events  labelspace.Space

	rows          int
	skipped       int
	intentCounts  map[string]int
	urgencyCounts map[string]int
	eventCounts   map[string]int
	problemCounts map[string]int
}

// NewCollector creates a Collector that counts only labels recognized by the
// given spaces; invalid labels are counted via their validation problems.
func NewCollector(intent, urgency, events labelspace.Space) *Collector {
	return &Collector{
		intent:        intent,
		urgency:       urgency,
		events:        events,
		intentCounts:  make(map[string]int),
		urgencyCounts: make(map[string]int),
		eventCounts:   make(map[string]int),
		problemCounts: make(map[string]int),
	}
}

// Record tallies one parsed record's labels.
func (c *Collector) Record(r model.Record) {
	c.rows++
	if c.intent.Contains(r.Intent) {
		c.intentCounts[r.Intent]++
	}
	if c.urgency.Contains(r.Urgency) {
		c.urgencyCounts[r.Urgency]++
	}
	for _, ev := range r.Events {
		if c.events.Contains(ev) {
			c.eventCounts[ev]++
		}
	}
}

// Problems tallies validation problems for one record.
func (c *Collector) Problems(problems []string) {
	for _, p := range problems {
		c.problemCounts[p]++
	}
}

// Skipped tallies input lines that failed to parse as records.
func (c *Collector) Skipped(n int) { c.skipped += n }

// Report is the structured summary written alongside the queue.
type Report struct {
	RunID         string         `json:"run_id"`
	CreatedAt     time.Time      `json:"created_at"`
	Input         string         `json:"input"`
	Rows          int            `json:"n_rows"`
	SkippedRows   int            `json:"skipped_rows"`
	IntentCounts  map[string]int `json:"intent_counts"`
	UrgencyCounts map[string]int `json:"urgency_counts"`
	EventCounts   map[string]int `json:"event_counts"`
	ProblemCounts map[string]int `json:"problem_counts"`
	QueueSize     int            `json:"queue_size"`
}

// Report finalizes the collector into a Report for the given input path and
// final queue size.
func (c *Collector) Report(input string, queueSize int) Report {
	return Report{
		RunID:         uuid.NewString(),
		CreatedAt:     time.Now().UTC(),
		Input:         input,
		Rows:          c.rows,
		SkippedRows:   c.skipped,
		IntentCounts:  c.intentCounts,
		UrgencyCounts: c.urgencyCounts,
		EventCounts:   c.eventCounts,
		ProblemCounts: c.problemCounts,
		QueueSize:     queueSize,
	}
}
