package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PriceTier is an ordinal cost bucket. Comparisons use the rank, never the
// display symbol.
type PriceTier int

const (
	PriceTierUnknown PriceTier = iota
	PriceTierBudget            // $
	PriceTierModerate          // $$
	PriceTierExpensive         // $$$
	PriceTierLuxury            // $$$$
)

var priceTierSymbols = map[PriceTier]string{
	PriceTierBudget:    "$",
	PriceTierModerate:  "$$",
	PriceTierExpensive: "$$$",
	PriceTierLuxury:    "$$$$",
}

// AllPriceTiers lists the known tiers in ascending order.
var AllPriceTiers = []PriceTier{PriceTierBudget, PriceTierModerate, PriceTierExpensive, PriceTierLuxury}

// ParsePriceTier maps a display symbol ("$".."$$$$") to its tier.
func ParsePriceTier(s string) (PriceTier, error) {
	s = strings.TrimSpace(s)
	for tier, symbol := range priceTierSymbols {
		if symbol == s {
			return tier, nil
		}
	}
	return PriceTierUnknown, fmt.Errorf("unknown price tier %q", s)
}

func (t PriceTier) String() string {
	return priceTierSymbols[t]
}

// Rank is the position of the tier in the fixed ordering, 0 for unknown.
func (t PriceTier) Rank() int {
	return int(t)
}

// PriceRange covers a single tier ("$$") or an inclusive range ("$$-$$$").
// Listings without a price have the zero value.
type PriceRange struct {
	Min PriceTier
	Max PriceTier
}

// SingleTier builds a range holding exactly one tier.
func SingleTier(t PriceTier) PriceRange {
	return PriceRange{Min: t, Max: t}
}

// ParsePriceRange parses "$$" or "$$-$$$". An empty string yields the zero range.
func ParsePriceRange(s string) (PriceRange, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PriceRange{}, nil
	}
	lo, hi, isRange := strings.Cut(s, "-")
	min, err := ParsePriceTier(lo)
	if err != nil {
		return PriceRange{}, err
	}
	if !isRange {
		return SingleTier(min), nil
	}
	max, err := ParsePriceTier(hi)
	if err != nil {
		return PriceRange{}, err
	}
	if max < min {
		return PriceRange{}, fmt.Errorf("price range %q is inverted", s)
	}
	return PriceRange{Min: min, Max: max}, nil
}

// IsZero reports whether the listing carries no price at all.
func (r PriceRange) IsZero() bool {
	return r.Min == PriceTierUnknown
}

// Contains reports whether t falls inside the inclusive range.
func (r PriceRange) Contains(t PriceTier) bool {
	return !r.IsZero() && t >= r.Min && t <= r.Max
}

func (r PriceRange) String() string {
	if r.IsZero() {
		return ""
	}
	if r.Min == r.Max {
		return r.Min.String()
	}
	return r.Min.String() + "-" + r.Max.String()
}

func (r PriceRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *PriceRange) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("price tier must be a string: %w", err)
	}
	parsed, err := ParsePriceRange(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
