// Package queue turns per-record findings into a totally ordered review
// queue. Scoring is a pure function of which reason kinds fired; ordering is
// a stable sort so identical input always yields an identical queue.
package queue

import (
	"sort"

	"github.com/adiwarna/sieve/internal/model"
)

// Weights assigns a priority weight per reason kind. A kind present in a
// QueueItem's reason set contributes its weight exactly once, however many
// reasons of that kind fired.
type Weights map[model.ReasonKind]int

// DefaultWeights orders the queue the way reviewers triage: leaked rows
// first, then structurally broken ones, then duplicates, then suspected
// mislabels, with plain keyword hits at the bottom.
func DefaultWeights() Weights {
	return Weights{
		model.ReasonLeakage:    100,
		model.ReasonProblem:    80,
		model.ReasonDuplicate:  50,
		model.ReasonPolicy:     30,
		model.ReasonEscalation: 20,
		model.ReasonKeyword:    10,
	}
}

// Score sums the weights of the distinct reason kinds present on item.
func (w Weights) Score(item model.QueueItem) int {
	seen := make(map[model.ReasonKind]bool, len(item.Reasons))
	total := 0
	for _, r := range item.Reasons {
		if seen[r.Kind] {
			continue
		}
		seen[r.Kind] = true
		total += w[r.Kind]
	}
	return total
}

// Sort orders items by descending score. The sort is stable: equal scores
// keep their original relative (input) order. maxQueue > 0 truncates the
// sorted queue to that many entries; 0 means unlimited.
func Sort(items []model.QueueItem, w Weights, maxQueue int) []model.QueueItem {
	sort.SliceStable(items, func(i, j int) bool {
		return w.Score(items[i]) > w.Score(items[j])
	})
	if maxQueue > 0 && len(items) > maxQueue {
		items = items[:maxQueue]
	}
	return items
}
