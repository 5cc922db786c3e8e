package geoapify

import (
	"context"
	"errors"

	"travel-buddy/models"
	geoapifymodels "travel-buddy/models/geoapify"
)

// ErrFetchFailed covers every way a places search can fail: transport errors,
// non-2xx statuses and payloads without a features array.
var ErrFetchFailed = errors.New("places fetch failed")

// PlacesAPI defines the interface for interacting with the Geoapify Places API
type PlacesAPI interface {
	SearchPlaces(ctx context.Context, point models.GeoPoint, category string, radiusMeters, limit int) (*geoapifymodels.PlacesResponse, error)
}
