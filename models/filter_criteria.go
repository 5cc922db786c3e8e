package models

import (
	"fmt"
	"time"
)

// FilterCriteria is rebuilt from request state on every evaluation.
// Empty dimensions impose no constraint.
type FilterCriteria struct {
	SearchText   string
	CategoryTags []string
	LocationTags []string
	PriceTiers   []PriceTier
	// Date is echoed back for display and is not a predicate.
	Date *time.Time
}

// SortKey selects the listing ordering.
type SortKey string

const (
	SortRatingDesc  SortKey = "rating-desc"
	SortNameAsc     SortKey = "name-asc"
	SortNameDesc    SortKey = "name-desc"
	SortPriceAsc    SortKey = "price-asc"
	SortPriceDesc   SortKey = "price-desc"
	SortDurationAsc SortKey = "duration-asc"
)

// DefaultSortKey is used when the caller does not pick one.
const DefaultSortKey = SortRatingDesc

var sortKeyAliases = map[string]SortKey{
	"":         DefaultSortKey,
	"rating":   SortRatingDesc,
	"duration": SortDurationAsc,
}

// AllSortKeys lists every supported key.
var AllSortKeys = []SortKey{SortRatingDesc, SortNameAsc, SortNameDesc, SortPriceAsc, SortPriceDesc, SortDurationAsc}

// ParseSortKey accepts the canonical names plus the short forms "rating" and
// "duration" used by older clients.
func ParseSortKey(s string) (SortKey, error) {
	if key, ok := sortKeyAliases[s]; ok {
		return key, nil
	}
	for _, key := range AllSortKeys {
		if string(key) == s {
			return key, nil
		}
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}
