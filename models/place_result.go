package models

// PlaceResult is one nearby place annotated with its distance from the caller.
type PlaceResult struct {
	Name             string  `json:"name"`
	FormattedAddress string  `json:"formatted_address"`
	Latitude         float64 `json:"lat"`
	Longitude        float64 `json:"lon"`
	OpeningHours     string  `json:"opening_hours,omitempty"`
	Phone            string  `json:"phone,omitempty"`
	Description      string  `json:"description,omitempty"`
	DistanceMeters   float64 `json:"distance_meters"`
	DistanceLabel    string  `json:"distance_label"`
	MapsURL          string  `json:"maps_url"`
}

// NearbyPlacesResponse is what the places endpoints return.
type NearbyPlacesResponse struct {
	Origin       GeoPoint      `json:"origin"`
	Category     string        `json:"category"`
	RadiusMeters int           `json:"radius_meters"`
	Sequence     uint64        `json:"sequence"`
	Places       []PlaceResult `json:"places"`
}

// NearbyDestination pairs an indexed destination with its distance.
type NearbyDestination struct {
	Listing        Listing `json:"destination"`
	DistanceMeters float64 `json:"distance_meters"`
	DistanceLabel  string  `json:"distance_label"`
}
