package models

// ListingKind names the catalog a listing belongs to.
type ListingKind string

const (
	KindDestination ListingKind = "destination"
	KindActivity    ListingKind = "activity"
	KindCuisine     ListingKind = "cuisine"
	KindProduct     ListingKind = "product"
)

// Listing generalizes destinations, activities, cuisines and products.
// Kind-specific fields are left empty when they do not apply.
type Listing struct {
	ID            string      `json:"id"`
	Kind          ListingKind `json:"kind"`
	Slug          string      `json:"slug,omitempty"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	LocationTag   string      `json:"location_tag"`
	LocationLabel string      `json:"location_label,omitempty"`
	Country       string      `json:"country,omitempty"`
	CategoryTags  []string    `json:"category_tags"`
	PriceTier     PriceRange  `json:"price_tier"`
	Rating        float64     `json:"rating"`
	Image         string      `json:"image,omitempty"`

	// destination
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
	Featured  bool    `json:"featured,omitempty"`

	// activity
	Duration   string   `json:"duration,omitempty"`
	Bookable   bool     `json:"bookable,omitempty"`
	Highlights []string `json:"highlights,omitempty"`

	// cuisine
	Restaurants []Restaurant `json:"restaurants,omitempty"`

	// product
	Origin      string   `json:"origin,omitempty"`
	History     string   `json:"history,omitempty"`
	WhereToFind []string `json:"where_to_find,omitempty"`
}

// Restaurant is a place serving a cuisine listing.
type Restaurant struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Address   string     `json:"address"`
	PriceTier PriceRange `json:"price_tier"`
	Rating    float64    `json:"rating"`
	Distance  string     `json:"distance"`
}

// Point returns the listing coordinates. Only destinations carry them.
func (l Listing) Point() GeoPoint {
	return GeoPoint{Latitude: l.Latitude, Longitude: l.Longitude}
}

// SearchFields lists the free-text fields a search term is matched against.
func (l Listing) SearchFields() []string {
	fields := []string{l.Name, l.Description}
	if l.Country != "" {
		fields = append(fields, l.Country)
	}
	if l.LocationLabel != "" {
		fields = append(fields, l.LocationLabel)
	}
	// products are searchable by their single category label
	if l.Kind == KindProduct {
		fields = append(fields, l.CategoryTags...)
	}
	return fields
}

// CatalogFile is the on-disk layout of resources/catalog.json.
type CatalogFile struct {
	Destinations []Listing `json:"destinations"`
	Activities   []Listing `json:"activities"`
	Cuisines     []Listing `json:"cuisines"`
	Products     []Listing `json:"products"`
}
