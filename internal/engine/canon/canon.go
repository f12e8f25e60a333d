// Package canon normalizes record text into the comparable form the rest of
// the engine operates on. Duplicate and leakage detection are only as good as
// this normalization: two texts a human would call "the same record retyped"
// must come out byte-identical.
package canon

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize returns the canonical form of text: Unicode NFKC, lower-cased,
// trimmed, interior whitespace runs collapsed to a single space.
// Pure and total — empty input normalizes to "". Idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	s := norm.NFKC.String(text)
	s = strings.ToLower(s)
	// Fields splits on any run of Unicode whitespace, which both trims
	// and collapses in one pass.
	return strings.Join(strings.Fields(s), " ")
}
