// Package validate checks structural well-formedness of a record's labels.
// It only reports — nothing is auto-corrected here.
package validate

import (
	"strings"

	"github.com/adiwarna/sieve/internal/engine/labelspace"
	"github.com/adiwarna/sieve/internal/model"
)

// Problem codes. These appear in queue output as "data_problem:<code>".
const (
	MissingOrEmptyText = "missing_or_empty_text"
	InvalidIntent      = "invalid_intent"
	InvalidUrgency     = "invalid_urgency"
	InvalidEvents      = "invalid_events"
)

// Spaces bundles the three label spaces validation checks against.
type Spaces struct {
	Intent  labelspace.Space
	Urgency labelspace.Space
	Events  labelspace.Space
}

// Check returns every structural problem found on r. All checks run
// independently; an empty text does not suppress label checks.
func Check(r model.Record, sp Spaces) []string {
	var problems []string

	if strings.TrimSpace(r.Text) == "" {
		problems = append(problems, MissingOrEmptyText)
	}
	if !sp.Intent.Contains(r.Intent) {
		problems = append(problems, InvalidIntent)
	}
	if !sp.Urgency.Contains(r.Urgency) {
		problems = append(problems, InvalidUrgency)
	}
	for _, e := range r.Events {
		if !sp.Events.Contains(e) {
			problems = append(problems, InvalidEvents)
			break
		}
	}
	return problems
}
