package sieve

import (
	"github.com/adiwarna/sieve/internal/model"
)

// Record is one labeled text row to audit. ID may be empty; the engine then
// derives a stable content-based identifier.
type Record struct {
	ID      string
	Text    string
	Intent  string
	Urgency string
	Events  []string
}

// Rule is one declarative keyword rule. Pattern is a regular expression
// matched case-insensitively against canonicalized text.
type Rule struct {
	Name          string
	Pattern       string
	SuggestEvents []string
	MinIntent     string
	MinUrgency    string
}

// Labels is a correction payload for Store.Apply.
type Labels struct {
	Intent  string
	Urgency string
	Events  []string
}

// Item is one flagged record in the review queue, highest priority first.
type Item struct {
	Ordinal int
	ID      string
	Text    string

	Intent  string
	Urgency string
	Events  []string

	Reasons     []string // alphabetically sorted reason codes
	KeywordHits []string // alphabetically sorted matched patterns

	SuggestIntent  string
	SuggestUrgency string
	SuggestEvents  []string
}

// HasSuggestion reports whether the audit proposed any label change.
func (it Item) HasSuggestion() bool {
	return it.SuggestIntent != "" || it.SuggestUrgency != "" || len(it.SuggestEvents) > 0
}

func recordsToModel(records []Record) []model.Record {
	out := make([]model.Record, len(records))
	for i, r := range records {
		out[i] = model.Record{
			ID:      r.ID,
			Text:    r.Text,
			Intent:  r.Intent,
			Urgency: r.Urgency,
			Events:  r.Events,
			Ordinal: i,
		}
	}
	return out
}
