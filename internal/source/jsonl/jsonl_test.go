package jsonl

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCorpus(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "train.jsonl")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write corpus: %v", err)
	}
	return path
}

func TestRecords(t *testing.T) {
	path := writeCorpus(t,
		`{"id":"a1","text":"Ada kebakaran!","intent":"SOS","urgency":"HIGH","events":["FIRE_EXPLOSION"]}`,
		``,
		`{"text":"laporan rutin","intent":"NON_SOS","urgency":"LOW","events":[]}`,
		`not json at all`,
		`{"broken json`,
		`[1,2,3]`,
		`{"text":"tanpa label"}`,
	)

	records, skipped, err := New(path).Records(context.Background())
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if skipped != 3 {
		t.Fatalf("expected 3 skipped lines, got %d", skipped)
	}

	// Ordinals are physical line positions, so skipped lines still consume
	// them — ordinals stay stable across runs.
	wantOrdinals := []int{0, 2, 6}
	for i, want := range wantOrdinals {
		if records[i].Ordinal != want {
			t.Fatalf("record %d ordinal = %d, want %d", i, records[i].Ordinal, want)
		}
	}

	first := records[0]
	if first.ID != "a1" || first.Text != "Ada kebakaran!" || first.Intent != "SOS" ||
		first.Urgency != "HIGH" || len(first.Events) != 1 {
		t.Fatalf("first record mismatch: %+v", first)
	}
	// Absent fields decode to their zero values; validation deals with them.
	last := records[2]
	if last.ID != "" || last.Intent != "" || last.Events != nil {
		t.Fatalf("sparse record mismatch: %+v", last)
	}
}

func TestRecordsCoerceMistypedFields(t *testing.T) {
	path := writeCorpus(t,
		`{"text": 123, "intent":"SOS", "urgency":"HIGH", "events":[]}`,
		`{"id": 5, "text":"ada kebakaran", "intent":"SOS", "urgency":"HIGH", "events":"notalist"}`,
		`{"text":"ok", "intent":"NON_SOS", "urgency":"LOW", "events":[1,2]}`,
	)

	records, skipped, err := New(path).Records(context.Background())
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	// Every object line is a record; mistyped fields coerce to zero values
	// so validation flags them instead of the reader dropping the row.
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if skipped != 0 {
		t.Fatalf("expected 0 skipped lines, got %d", skipped)
	}

	if records[0].Text != "" || records[0].Intent != "SOS" {
		t.Fatalf("numeric text must coerce to empty: %+v", records[0])
	}
	if records[1].ID != "" || records[1].Text != "ada kebakaran" || records[1].Events != nil {
		t.Fatalf("non-list events must coerce to nil: %+v", records[1])
	}
	if records[2].Events != nil {
		t.Fatalf("non-string event list must coerce to nil: %+v", records[2])
	}
}

func TestRecordsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.jsonl")
	_, _, err := New(path).Records(context.Background())
	if err == nil {
		t.Fatal("expected error for missing corpus")
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("error must name the offending path, got: %v", err)
	}
}

func TestRecordsCancelledContext(t *testing.T) {
	path := writeCorpus(t, `{"text":"x"}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := New(path).Records(ctx); err == nil {
		t.Fatal("expected context error")
	}
}

func TestPath(t *testing.T) {
	if got := New("/tmp/x.jsonl").Path(); got != "/tmp/x.jsonl" {
		t.Fatalf("Path = %q", got)
	}
}
