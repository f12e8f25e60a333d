// Package jsonl reads corpora stored as JSON Lines: one flat object per
// line with text, intent, urgency, and events fields.
package jsonl

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/adiwarna/sieve/internal/model"
	"github.com/adiwarna/sieve/internal/source"
)

// Scanner buffer cap: one record is a short human-authored text, but be
// generous in case of pasted transcripts.
const maxLineBytes = 1 << 20 // 1MB

func init() {
	source.Register("jsonl", func(path string) source.Source {
		return New(path)
	})
}

// Source reads records from a JSONL file.
type Source struct {
	path string
}

// New creates a JSONL source for the given path. The file is opened lazily
// on Records, so a missing path surfaces there.
func New(path string) *Source {
	return &Source{path: path}
}

// Path returns the corpus file path.
func (s *Source) Path() string { return s.path }

// fieldString decodes a JSON value as a string. Any other type coerces to ""
// so validation sees the missing value instead of the line being dropped.
func fieldString(raw json.RawMessage) string {
	var s string
	if raw == nil || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

// fieldStrings decodes a JSON value as a string list. A non-list value, or a
// list holding anything but strings, coerces to nil.
func fieldStrings(raw json.RawMessage) []string {
	var l []string
	if raw == nil || json.Unmarshal(raw, &l) != nil {
		return nil
	}
	return l
}

// Records reads every line of the file. Any JSON object is a record: fields
// of the wrong type coerce to their zero value rather than dropping the line,
// so a row with a numeric text or a non-list events field still reaches
// validation and gets flagged there. Blank lines and non-object lines are
// skipped; skipped lines still consume an ordinal so record ordinals are
// stable across runs. The skipped count covers only malformed (non-blank)
// lines.
func (s *Source) Records(ctx context.Context) ([]model.Record, int, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, 0, fmt.Errorf("jsonl source: open %s: %w", s.path, err)
	}
	defer f.Close()

	var (
		records []model.Record
		skipped int
	)
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	for ordinal := 0; sc.Scan(); ordinal++ {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line[0] != '{' {
			// Not an object — a bare value or array is not a record.
			skipped++
			continue
		}
		var fields map[string]json.RawMessage
		if err := json.Unmarshal([]byte(line), &fields); err != nil {
			skipped++
			continue
		}
		records = append(records, model.Record{
			ID:      fieldString(fields["id"]),
			Text:    fieldString(fields["text"]),
			Intent:  fieldString(fields["intent"]),
			Urgency: fieldString(fields["urgency"]),
			Events:  fieldStrings(fields["events"]),
			Ordinal: ordinal,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, 0, fmt.Errorf("jsonl source: read %s: %w", s.path, err)
	}
	return records, skipped, nil
}
