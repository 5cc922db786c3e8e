package geoapify

// PlacesResponse is the GeoJSON FeatureCollection returned by GET /places.
// Features stays nil when the key is absent from the payload.
type PlacesResponse struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string     `json:"type"`
	Properties Properties `json:"properties"`
}

type Properties struct {
	Name         string   `json:"name"`
	Formatted    string   `json:"formatted"`
	Lat          float64  `json:"lat"`
	Lon          float64  `json:"lon"`
	OpeningHours string   `json:"opening_hours,omitempty"`
	Contact      *Contact `json:"contact,omitempty"`
	Description  string   `json:"description,omitempty"`
	Categories   []string `json:"categories,omitempty"`
	PlaceID      string   `json:"place_id,omitempty"`
}

type Contact struct {
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}
