package store

import (
	"context"
	"testing"

	"github.com/adiwarna/sieve/internal/model"
)

func TestMemoryApply(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	labels := model.Labels{Intent: "SOS", Urgency: "HIGH", Events: []string{"FIRE_EXPLOSION"}}
	if err := m.Apply(ctx, "r1", labels); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	got, ok := m.Applied("r1")
	if !ok {
		t.Fatal("expected correction for r1")
	}
	if got.Intent != "SOS" || got.Urgency != "HIGH" || len(got.Events) != 1 {
		t.Fatalf("applied labels mismatch: %+v", got)
	}
	if m.Len() != 1 {
		t.Fatalf("Len = %d, want 1", m.Len())
	}

	// Last write wins — a reviewer re-editing the same row.
	if err := m.Apply(ctx, "r1", model.Labels{Intent: "NON_SOS", Urgency: "LOW"}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	got, _ = m.Applied("r1")
	if got.Intent != "NON_SOS" {
		t.Fatalf("expected overwrite, got %+v", got)
	}
	if m.Len() != 1 {
		t.Fatalf("Len = %d, want 1", m.Len())
	}
}

func TestMemoryApplyEmptyID(t *testing.T) {
	m := NewMemory()
	if err := m.Apply(context.Background(), "", model.Labels{}); err == nil {
		t.Fatal("expected error for empty id")
	}
}
