// Package rules evaluates the declarative keyword-rule list against
// canonicalized record text and proposes label corrections. Rules never
// mutate a record; they emit reasons and suggestions for a human reviewer.
package rules

import (
	"fmt"
	"regexp"

	"github.com/adiwarna/sieve/internal/engine/labelspace"
	"github.com/adiwarna/sieve/internal/model"
)

// Reason codes emitted by this package beyond the rule names themselves.
const (
	// NonEmergencyHeavyEvent fires when the least-severe intent co-occurs
	// with a heavy event. It suggests the "possible emergency, needs human
	// check" intent, deliberately never the most severe one.
	NonEmergencyHeavyEvent = "non_sos_with_heavy_event"

	// underEscalatedPrefix prefixes the synthetic reason for a heavy event
	// whose record sits below the event's minimum urgency.
	underEscalatedPrefix = "heavy_event_low_urgency:"
)

// Rule is one declarative audit rule: a compiled pattern plus the corrections
// it implies. Matching logic lives in Engine, not in the rule data.
type Rule struct {
	Name          string
	Pattern       string // raw pattern, reported verbatim as a keyword hit
	SuggestEvents []string
	MinIntent     string // "" = no intent floor
	MinUrgency    string // "" = no urgency floor

	re *regexp.Regexp
}

// Compile builds a Rule with a case-insensitive compiled pattern.
func Compile(name, pattern string, suggestEvents []string, minIntent, minUrgency string) (Rule, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("rule %s: compile %q: %w", name, pattern, err)
	}
	return Rule{
		Name:          name,
		Pattern:       pattern,
		SuggestEvents: suggestEvents,
		MinIntent:     minIntent,
		MinUrgency:    minUrgency,
		re:            re,
	}, nil
}

// Spaces bundles the label spaces the engine escalates within.
type Spaces struct {
	Intent  labelspace.Space
	Urgency labelspace.Space
	Events  labelspace.Space
}

// Engine holds the read-only rule list and escalation tables. Safe for
// concurrent use once constructed.
type Engine struct {
	rules []Rule
	sp    Spaces

	// heavyMinUrgency maps heavy events to the minimum urgency they imply,
	// independent of which rule (if any) detected them.
	heavyMinUrgency map[string]string

	// policyHeavy is the event subset that triggers NonEmergencyHeavyEvent
	// when paired with the least-severe intent.
	policyHeavy map[string]bool
}

// New constructs an Engine. heavyMinUrgency and policyHeavy are copied;
// the rule slice is retained and must not be mutated afterwards.
func New(rl []Rule, sp Spaces, heavyMinUrgency map[string]string, policyHeavy []string) *Engine {
	hm := make(map[string]string, len(heavyMinUrgency))
	for ev, min := range heavyMinUrgency {
		hm[ev] = min
	}
	ph := make(map[string]bool, len(policyHeavy))
	for _, ev := range policyHeavy {
		ph[ev] = true
	}
	return &Engine{rules: rl, sp: sp, heavyMinUrgency: hm, policyHeavy: ph}
}

// Findings is the outcome of evaluating one record against the rule list.
type Findings struct {
	Reasons     []model.Reason // de-duplicated, fire order
	KeywordHits []string       // de-duplicated raw patterns
	// Suggestions; "" / nil means no change proposed.
	SuggestIntent  string
	SuggestUrgency string
	SuggestEvents  []string // canonical Event-space order
}

// Evaluate runs every rule against the canonicalized text, then the
// heavy-event escalation table over the record's current events, then the
// non-emergency policy check. All rules are evaluated — no short-circuiting.
//
// Minimum-intent/urgency escalation only applies when the current label is a
// recognized member of its space; unrecognized labels are validation's
// problem, not escalation's.
func (e *Engine) Evaluate(canonText, intent, urgency string, events []string) Findings {
	var f Findings
	seenReason := make(map[string]bool)
	seenHit := make(map[string]bool)
	suggested := make(map[string]bool)

	current := make(map[string]bool, len(events))
	for _, ev := range events {
		current[ev] = true
	}

	addReason := func(kind model.ReasonKind, code string) {
		if !seenReason[code] {
			seenReason[code] = true
			f.Reasons = append(f.Reasons, model.Reason{Kind: kind, Code: code})
		}
	}

	for _, r := range e.rules {
		if !r.re.MatchString(canonText) {
			continue
		}

		addReason(model.ReasonKeyword, r.Name)
		if !seenHit[r.Pattern] {
			seenHit[r.Pattern] = true
			f.KeywordHits = append(f.KeywordHits, r.Pattern)
		}

		for _, ev := range r.SuggestEvents {
			if !current[ev] {
				suggested[ev] = true
			}
		}

		if r.MinIntent != "" && e.sp.Intent.Contains(intent) &&
			!e.sp.Intent.Satisfies(intent, r.MinIntent) {
			f.SuggestIntent = e.escalate(e.sp.Intent, f.SuggestIntent, intent, r.MinIntent)
		}
		if r.MinUrgency != "" && e.sp.Urgency.Contains(urgency) &&
			!e.sp.Urgency.Satisfies(urgency, r.MinUrgency) {
			f.SuggestUrgency = e.escalate(e.sp.Urgency, f.SuggestUrgency, urgency, r.MinUrgency)
		}
	}

	// Heavy events present on the record imply an urgency floor regardless
	// of which rule (if any) fired. Iterate in canonical order so reason
	// order is deterministic.
	for _, ev := range e.sp.Events.CanonicalOrder(events) {
		min, ok := e.heavyMinUrgency[ev]
		if !ok || !e.sp.Urgency.Contains(urgency) || e.sp.Urgency.Satisfies(urgency, min) {
			continue
		}
		addReason(model.ReasonEscalation, underEscalatedPrefix+ev)
		f.SuggestUrgency = e.escalate(e.sp.Urgency, f.SuggestUrgency, urgency, min)
	}

	// Least-severe intent with a heavy event aboard is suspicious, but not
	// proof: force the second-most-severe intent, never the top one.
	if intent == e.sp.Intent.LeastSevere() && e.sp.Intent.Contains(intent) {
		for _, ev := range events {
			if e.policyHeavy[ev] {
				addReason(model.ReasonPolicy, NonEmergencyHeavyEvent)
				f.SuggestIntent = e.sp.Intent.SecondMostSevere()
				break
			}
		}
	}

	if len(suggested) > 0 {
		keys := make([]string, 0, len(suggested))
		for ev := range suggested {
			keys = append(keys, ev)
		}
		f.SuggestEvents = e.sp.Events.CanonicalOrder(keys)
	}
	return f
}

// escalate merges a new minimum into the running suggestion: more severe of
// (previous suggestion, or the current label when none yet) and min. The
// result always satisfies min and never becomes less severe than before.
func (e *Engine) escalate(sp labelspace.Space, prev, current, min string) string {
	base := prev
	if base == "" {
		base = current
	}
	return sp.MoreSevere(base, min)
}
