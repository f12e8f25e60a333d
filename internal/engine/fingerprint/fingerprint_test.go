package fingerprint

import "testing"

func TestSum(t *testing.T) {
	a := Sum("ada kebakaran!")
	b := Sum("ada kebakaran!")
	if a == "" {
		t.Fatal("non-empty text must fingerprint")
	}
	if a != b {
		t.Fatalf("same input produced different fingerprints: %s vs %s", a, b)
	}
	if len(a) != 40 {
		t.Fatalf("expected 40 hex chars, got %d", len(a))
	}
	if Sum("ada kebakaran") == a {
		t.Fatal("different inputs must not collide")
	}
}

func TestSumEmpty(t *testing.T) {
	if got := Sum(""); got != "" {
		t.Fatalf("empty text must not fingerprint, got %q", got)
	}
}

func TestFallbackID(t *testing.T) {
	if got := FallbackID(17); got != "row_17" {
		t.Fatalf("FallbackID(17) = %q, want row_17", got)
	}
}

func TestIndexDuplicateSymmetry(t *testing.T) {
	idx := NewIndex()
	h := Sum("ada kebakaran!")
	idx.Add(h, 0)
	idx.Add(Sum("laporan harian"), 1)
	idx.Add(h, 2)

	// Both members of the bucket are duplicates — never just the second.
	if !idx.Duplicated(h) {
		t.Fatal("expected duplicate flag for repeated hash")
	}
	if idx.Duplicated(Sum("laporan harian")) {
		t.Fatal("unique hash must not be flagged")
	}
}

func TestIndexIgnoresEmpty(t *testing.T) {
	idx := NewIndex()
	idx.Add("", 0)
	idx.Add("", 1)
	if idx.Duplicated("") {
		t.Fatal("empty fingerprints must never count as duplicates")
	}
}

func TestLeakSet(t *testing.T) {
	s := NewLeakSet([]string{Sum("ada kebakaran!"), "", Sum("tolong")})
	if !s.Contains(Sum("ada kebakaran!")) {
		t.Fatal("expected membership for reference hash")
	}
	if s.Contains(Sum("laporan harian")) {
		t.Fatal("unexpected membership")
	}
	if s.Contains("") {
		t.Fatal("empty hash must never be contained")
	}
}
