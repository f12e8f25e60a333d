// Package labelspace implements the ordered label spaces and the severity
// arithmetic every other engine component delegates to. A space is an ordered
// sequence of tokens where index 0 is the most severe; no other package
// compares labels on its own.
package labelspace

// unrankedRank sorts below every defined label. Kept finite so rank math
// never overflows, but larger than any plausible space.
const unrankedRank = 1 << 30

// Space is an ordered label space. The zero value is an empty space in which
// every label is unrecognized.
type Space struct {
	labels []string
	rank   map[string]int
}

// New creates a Space from labels in descending severity order.
func New(labels []string) Space {
	rank := make(map[string]int, len(labels))
	for i, l := range labels {
		if _, dup := rank[l]; !dup {
			rank[l] = i
		}
	}
	return Space{labels: labels, rank: rank}
}

// Labels returns the space's labels in severity order.
func (s Space) Labels() []string { return s.labels }

// Len returns the number of labels in the space.
func (s Space) Len() int { return len(s.labels) }

// Contains reports whether label is a member of the space.
func (s Space) Contains(label string) bool {
	_, ok := s.rank[label]
	return ok
}

// Rank returns label's ordinal position; lower is more severe. Unrecognized
// labels rank below every member of the space.
func (s Space) Rank(label string) int {
	if r, ok := s.rank[label]; ok {
		return r
	}
	return unrankedRank
}

// MoreSevere returns the more severe of a and b. Ties favor a.
func (s Space) MoreSevere(a, b string) string {
	if s.Rank(a) <= s.Rank(b) {
		return a
	}
	return b
}

// Satisfies reports whether label already meets the min severity threshold,
// i.e. Rank(label) <= Rank(min).
func (s Space) Satisfies(label, min string) bool {
	return s.Rank(label) <= s.Rank(min)
}

// MostSevere returns the label at index 0, or "" for an empty space.
func (s Space) MostSevere() string {
	if len(s.labels) == 0 {
		return ""
	}
	return s.labels[0]
}

// LeastSevere returns the last label, or "" for an empty space.
func (s Space) LeastSevere() string {
	if len(s.labels) == 0 {
		return ""
	}
	return s.labels[len(s.labels)-1]
}

// SecondMostSevere returns the label at index 1, falling back to the most
// severe label for single-member spaces.
func (s Space) SecondMostSevere() string {
	if len(s.labels) > 1 {
		return s.labels[1]
	}
	return s.MostSevere()
}

// CanonicalOrder returns the members of vals that belong to the space,
// in the space's severity order, without duplicates. Unrecognized values
// are dropped.
func (s Space) CanonicalOrder(vals []string) []string {
	if len(vals) == 0 {
		return nil
	}
	present := make(map[string]bool, len(vals))
	for _, v := range vals {
		present[v] = true
	}
	var out []string
	for _, l := range s.labels {
		if present[l] {
			out = append(out, l)
		}
	}
	return out
}
