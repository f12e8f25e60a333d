package model

import "testing"

func TestHasKind(t *testing.T) {
	item := QueueItem{Reasons: []Reason{
		{Kind: ReasonKeyword, Code: "kw_fire_missing_event"},
		{Kind: ReasonProblem, Code: "data_problem:invalid_intent"},
	}}

	if !item.HasKind(ReasonKeyword) || !item.HasKind(ReasonProblem) {
		t.Fatalf("present kinds not reported: %+v", item.Reasons)
	}
	if item.HasKind(ReasonLeakage) {
		t.Fatal("absent kind reported as present")
	}
	if (QueueItem{}).HasKind(ReasonKeyword) {
		t.Fatal("empty reason set reported a kind")
	}
}
