package csvfile

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/adiwarna/sieve/internal/model"
	"github.com/adiwarna/sieve/internal/output"
)

func TestWriteAndReadBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "review_queue.csv")

	o, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	items := []model.QueueItem{
		{
			Ordinal: 0, ID: "a", Text: "ada, \"kebakaran\"", Intent: "SOS", Urgency: "HIGH",
			Reasons: []model.Reason{{Kind: model.ReasonKeyword, Code: "kw_fire_missing_event"}},
		},
		{
			Ordinal: 3, ID: "b", Text: "tolong", Intent: "NON_SOS", Urgency: "LOW",
			Reasons:       []model.Reason{{Kind: model.ReasonKeyword, Code: "kw_emergency_word_but_non_sos"}},
			SuggestIntent: "SOS_POSSIBLE",
		},
	}
	for _, item := range items {
		if err := o.Write(context.Background(), item); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := o.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	for i, col := range output.Header {
		if rows[0][i] != col {
			t.Fatalf("header column %d = %q, want %q", i, rows[0][i], col)
		}
	}
	// CSV quoting round-trips commas and quotes in text.
	if rows[1][2] != `ada, "kebakaran"` {
		t.Fatalf("text column = %q", rows[1][2])
	}
	if rows[2][7] != "SOS_POSSIBLE" {
		t.Fatalf("suggest_intent column = %q", rows[2][7])
	}
}

func TestNewBadDir(t *testing.T) {
	// A path whose parent cannot be created must fail loudly with the path.
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	if _, err := New(filepath.Join(blocker, "queue.csv")); err == nil {
		t.Fatal("expected error creating queue under a regular file")
	}
}
