package catalog

import (
	"strings"

	"travel-buddy/models"
)

// Filter keeps the listings that satisfy every active predicate of c, in
// their original relative order. Within a multi-valued dimension any one
// selected value is enough.
func Filter(listings []models.Listing, c models.FilterCriteria) []models.Listing {
	needle := strings.ToLower(strings.TrimSpace(c.SearchText))
	out := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if matchesSearch(l, needle) &&
			matchesCategories(l, c.CategoryTags) &&
			matchesLocations(l, c.LocationTags) &&
			matchesPrice(l, c.PriceTiers) {
			out = append(out, l)
		}
	}
	return out
}

func matchesSearch(l models.Listing, needle string) bool {
	if needle == "" {
		return true
	}
	for _, field := range l.SearchFields() {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func matchesCategories(l models.Listing, tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	for _, have := range l.CategoryTags {
		for _, want := range tags {
			if have == want {
				return true
			}
		}
	}
	return false
}

func matchesLocations(l models.Listing, tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	for _, want := range tags {
		if l.LocationTag == want {
			return true
		}
	}
	return false
}

func matchesPrice(l models.Listing, tiers []models.PriceTier) bool {
	if len(tiers) == 0 {
		return true
	}
	for _, t := range tiers {
		if l.PriceTier.Contains(t) {
			return true
		}
	}
	return false
}
