package output

import (
	"sort"
	"strconv"
	"strings"

	"github.com/adiwarna/sieve/internal/model"
)

// Header is the review-queue column set. Column order and presence are part
// of the output contract — downstream review tooling indexes by name.
var Header = []string{
	"idx", "id", "text", "intent", "urgency", "events",
	"reasons", "suggest_intent", "suggest_urgency", "suggest_events", "keyword_hits",
}

// Row renders one queue item into Header-ordered columns. Reasons and
// keyword hits are pipe-joined in alphabetical order; event columns keep the
// Event space's canonical order they already carry. Absent suggestions
// render as empty strings.
func Row(item model.QueueItem) []string {
	codes := make([]string, 0, len(item.Reasons))
	for _, r := range item.Reasons {
		codes = append(codes, r.Code)
	}
	sort.Strings(codes)

	hits := append([]string(nil), item.KeywordHits...)
	sort.Strings(hits)

	return []string{
		strconv.Itoa(item.Ordinal),
		item.ID,
		item.Text,
		item.Intent,
		item.Urgency,
		strings.Join(item.Events, "|"),
		strings.Join(codes, "|"),
		item.SuggestIntent,
		item.SuggestUrgency,
		strings.Join(item.SuggestEvents, "|"),
		strings.Join(hits, "|"),
	}
}
