package cache

import "time"

// TTLs by value class.
const (
	OwnerTTL       = 600 * time.Second
	ProjectListTTL = 300 * time.Second
	EntityTTL      = 600 * time.Second
	HotFeedbackTTL = 180 * time.Second
	AnalyticsTTL   = 300 * time.Second
)

// HotPageLimit is the largest page size served from the hot feedback key.
// The cached value always holds this many items (or fewer if the source is
// smaller) so that any smaller limit is a prefix of it.
const HotPageLimit = 20

// IsHotFeedbackPage reports whether a feedback listing request may be served
// from the cache: the first page, no search term, limit within HotPageLimit.
// Everything else is computed on every request, which keeps arbitrary search
// strings and offsets out of the key space.
func IsHotFeedbackPage(page, limit int, query string) bool {
	return page == 0 && query == "" && limit > 0 && limit <= HotPageLimit
}
