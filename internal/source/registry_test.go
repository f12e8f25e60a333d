package source

import (
	"context"
	"testing"

	"github.com/adiwarna/sieve/internal/model"
)

type fakeSource struct{ path string }

func (f *fakeSource) Records(context.Context) ([]model.Record, int, error) { return nil, 0, nil }
func (f *fakeSource) Path() string                                         { return f.path }

func TestRegisterAndGet(t *testing.T) {
	Register("fake", func(path string) Source { return &fakeSource{path: path} })

	ctor, err := Get("fake")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got := ctor("/tmp/corpus.fake").Path(); got != "/tmp/corpus.fake" {
		t.Fatalf("Path = %q", got)
	}
}

func TestGetUnknownFormat(t *testing.T) {
	if _, err := Get("parquet"); err == nil {
		t.Fatal("expected error for unregistered format")
	}
}

func TestFormatsSorted(t *testing.T) {
	Register("zz", func(path string) Source { return &fakeSource{path: path} })
	Register("aa", func(path string) Source { return &fakeSource{path: path} })

	names := Formats()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("Formats not sorted: %v", names)
		}
	}
}
