// Package fingerprint derives content addresses from canonicalized text and
// builds the duplicate / leakage indexes over them. Identity here is exact
// normalized-text equality — no fuzzy matching.
package fingerprint

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

// Sum returns the hex SHA-1 digest of canonical text. Collision resistance is
// what matters here, not secrecy. Empty text returns "" — empty-string
// collisions are not meaningful duplicates, so empty records never enter an
// index and cannot derive an identifier from content.
func Sum(canonText string) string {
	if canonText == "" {
		return ""
	}
	h := sha1.Sum([]byte(canonText))
	return hex.EncodeToString(h[:])
}

// FallbackID returns the positional identifier for a record whose text is
// empty and whose source supplied no id. Stable across runs of the same input.
func FallbackID(ordinal int) string {
	return fmt.Sprintf("row_%d", ordinal)
}

// Index maps fingerprints to the ordinals that produced them within a single
// corpus. Built once per run, read-only afterwards.
type Index struct {
	byHash map[string][]int
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{byHash: make(map[string][]int)}
}

// Add records that ordinal carries the given fingerprint. Empty fingerprints
// are ignored.
func (x *Index) Add(hash string, ordinal int) {
	if hash == "" {
		return
	}
	x.byHash[hash] = append(x.byHash[hash], ordinal)
}

// Duplicated reports whether hash occurs more than once in the corpus.
// Every member of a duplicated bucket is a duplicate — the first occurrence
// is not exempt.
func (x *Index) Duplicated(hash string) bool {
	return hash != "" && len(x.byHash[hash]) > 1
}

// LeakSet is the fingerprint set of a reference corpus, used to detect
// content shared across supposedly disjoint splits.
type LeakSet map[string]struct{}

// NewLeakSet builds a LeakSet from fingerprints, skipping empties.
func NewLeakSet(hashes []string) LeakSet {
	s := make(LeakSet, len(hashes))
	for _, h := range hashes {
		if h != "" {
			s[h] = struct{}{}
		}
	}
	return s
}

// Contains reports whether hash appears in the reference corpus.
func (s LeakSet) Contains(hash string) bool {
	if hash == "" {
		return false
	}
	_, ok := s[hash]
	return ok
}
