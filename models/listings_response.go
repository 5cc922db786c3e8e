package models

import "time"

// ListingsResponse is one filtered and sorted page of a catalog.
type ListingsResponse struct {
	Kind  ListingKind `json:"kind"`
	Sort  SortKey     `json:"sort"`
	Date  *time.Time  `json:"date,omitempty"`
	Count int         `json:"count"`
	Items []Listing   `json:"items"`
	// Facets are computed over the unfiltered catalog.
	Categories []string `json:"categories"`
	Locations  []string `json:"locations"`
}

// LocationOverview is a destination with everything tagged to its location.
type LocationOverview struct {
	Destination Listing   `json:"destination"`
	Activities  []Listing `json:"activities"`
	Cuisines    []Listing `json:"cuisines"`
	Products    []Listing `json:"products"`
}
