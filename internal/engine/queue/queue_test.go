package queue

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/adiwarna/sieve/internal/model"
)

func item(ordinal int, kinds ...model.ReasonKind) model.QueueItem {
	reasons := make([]model.Reason, len(kinds))
	for i, k := range kinds {
		reasons[i] = model.Reason{Kind: k, Code: "code"}
	}
	return model.QueueItem{Ordinal: ordinal, ID: "r", Reasons: reasons}
}

func ordinals(items []model.QueueItem) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.Ordinal
	}
	return out
}

func TestScoreSumsDistinctKinds(t *testing.T) {
	w := DefaultWeights()

	tests := []struct {
		name string
		it   model.QueueItem
		want int
	}{
		{"leakage alone", item(0, model.ReasonLeakage), 100},
		{"keyword alone", item(0, model.ReasonKeyword), 10},
		{"leak plus problem plus dup", item(0, model.ReasonLeakage, model.ReasonProblem, model.ReasonDuplicate), 230},
		{"same kind counts once", item(0, model.ReasonKeyword, model.ReasonKeyword, model.ReasonKeyword), 10},
		{"no reasons", item(0), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.Score(tt.it); got != tt.want {
				t.Fatalf("Score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSortDescendingByScore(t *testing.T) {
	items := []model.QueueItem{
		item(0, model.ReasonKeyword),
		item(1, model.ReasonLeakage),
		item(2, model.ReasonProblem),
	}
	got := Sort(items, DefaultWeights(), 0)
	if diff := cmp.Diff([]int{1, 2, 0}, ordinals(got)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestSortStableOnTies(t *testing.T) {
	// Equal scores keep their input order, so re-running on identical input
	// always yields an identical queue.
	items := []model.QueueItem{
		item(3, model.ReasonKeyword),
		item(7, model.ReasonKeyword),
		item(2, model.ReasonEscalation, model.ReasonKeyword),
		item(9, model.ReasonKeyword),
	}
	got := Sort(items, DefaultWeights(), 0)
	if diff := cmp.Diff([]int{2, 3, 7, 9}, ordinals(got)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestSortCap(t *testing.T) {
	items := []model.QueueItem{
		item(0, model.ReasonKeyword),
		item(1, model.ReasonLeakage),
		item(2, model.ReasonDuplicate),
	}
	got := Sort(items, DefaultWeights(), 2)
	if diff := cmp.Diff([]int{1, 2}, ordinals(got)); diff != "" {
		t.Fatalf("cap mismatch (-want +got):\n%s", diff)
	}

	// Cap 0 means unlimited.
	items2 := []model.QueueItem{item(0, model.ReasonKeyword)}
	if got := Sort(items2, DefaultWeights(), 0); len(got) != 1 {
		t.Fatalf("expected 1 item, got %d", len(got))
	}
}
