package model

// Record is the atomic unit under audit: one labeled text row from a corpus.
type Record struct {
	ID      string   // supplied id, or derived (fingerprint / positional fallback)
	Text    string   // original text, never mutated by the engine
	Intent  string   // one value from the Intent space, possibly invalid/absent
	Urgency string   // one value from the Urgency space, possibly invalid/absent
	Events  []string // zero or more Event-space members, possibly invalid
	Ordinal int      // position in the input stream; tie-breaking and provenance only
}

// Labels is the triple of categorical fields a reviewer can correct.
type Labels struct {
	Intent  string
	Urgency string
	Events  []string
}
