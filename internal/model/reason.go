package model

// ReasonKind buckets a reason code for priority scoring. Each kind carries a
// fixed weight; a QueueItem is scored by summing the weights of the kinds
// present in its reason set (each kind counts once).
type ReasonKind int

const (
	// ReasonKeyword is a keyword rule that matched the record's text.
	ReasonKeyword ReasonKind = iota
	// ReasonEscalation is an under-escalated urgency for a heavy event.
	ReasonEscalation
	// ReasonPolicy is the non-emergency-intent-with-heavy-event policy flag.
	ReasonPolicy
	// ReasonDuplicate marks content-identical text within one corpus.
	ReasonDuplicate
	// ReasonProblem wraps a structural validation problem.
	ReasonProblem
	// ReasonLeakage marks content shared with the leakage-reference corpus.
	ReasonLeakage
)

// Reason is one audit finding: a machine-readable code plus its kind.
// Codes are part of the output contract (they appear verbatim in the queue);
// kinds exist only so scoring never has to inspect code strings.
type Reason struct {
	Kind ReasonKind
	Code string
}

// QueueItem is one flagged record plus everything a reviewer needs:
// the current label state, why it was flagged, and suggested corrections.
type QueueItem struct {
	Ordinal int
	ID      string
	Text    string // raw text, untouched

	Intent  string
	Urgency string
	Events  []string // current events, canonical Event-space order

	Reasons     []Reason // de-duplicated
	KeywordHits []string // de-duplicated raw patterns that matched

	// Suggestions; empty string / nil slice means "no change proposed".
	SuggestIntent  string
	SuggestUrgency string
	SuggestEvents  []string // canonical Event-space order
}

// HasKind reports whether any reason of the given kind fired.
func (q QueueItem) HasKind(k ReasonKind) bool {
	for _, r := range q.Reasons {
		if r.Kind == k {
			return true
		}
	}
	return false
}
