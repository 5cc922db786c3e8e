package catalog

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"travel-buddy/models"
)

// Sort returns a new slice ordered by key. The input is left untouched and
// ties keep their incoming relative order.
func Sort(listings []models.Listing, key models.SortKey) ([]models.Listing, error) {
	less, err := lessFunc(key)
	if err != nil {
		return nil, err
	}
	out := make([]models.Listing, len(listings))
	copy(out, listings)
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out, nil
}

func lessFunc(key models.SortKey) (func(a, b models.Listing) bool, error) {
	switch key {
	case models.SortRatingDesc:
		return func(a, b models.Listing) bool { return a.Rating > b.Rating }, nil
	case models.SortNameAsc:
		// collators keep scratch buffers, one per Sort call
		col := collate.New(language.English)
		return func(a, b models.Listing) bool { return col.CompareString(a.Name, b.Name) < 0 }, nil
	case models.SortNameDesc:
		col := collate.New(language.English)
		return func(a, b models.Listing) bool { return col.CompareString(a.Name, b.Name) > 0 }, nil
	case models.SortPriceAsc:
		return func(a, b models.Listing) bool { return comparePrice(a.PriceTier, b.PriceTier) < 0 }, nil
	case models.SortPriceDesc:
		return func(a, b models.Listing) bool { return comparePrice(a.PriceTier, b.PriceTier) > 0 }, nil
	case models.SortDurationAsc:
		// Lexical on the free-text label: "3 hours" sorts after "10 hours".
		// Kept for compatibility with existing clients.
		return func(a, b models.Listing) bool { return a.Duration < b.Duration }, nil
	}
	return nil, fmt.Errorf("unsupported sort key %q", key)
}

// comparePrice orders by tier rank: lower bound first, then upper bound.
func comparePrice(a, b models.PriceRange) int {
	if a.Min != b.Min {
		return a.Min.Rank() - b.Min.Rank()
	}
	return a.Max.Rank() - b.Max.Rank()
}
