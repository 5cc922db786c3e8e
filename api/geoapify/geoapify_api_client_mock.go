package geoapify

import (
	"context"
	"fmt"
	"log"

	"travel-buddy/models"
	geoapifymodels "travel-buddy/models/geoapify"
	"travel-buddy/util"
)

// GeoapifyApiClientMock serves a canned places payload from disk. It is used
// when no API key is configured.
type GeoapifyApiClientMock struct {
	responsePath string
}

// NewGeoapifyApiClientMock creates a new instance of GeoapifyApiClientMock
func NewGeoapifyApiClientMock(responsePath string) *GeoapifyApiClientMock {
	return &GeoapifyApiClientMock{responsePath: responsePath}
}

// SearchPlaces returns at most limit features from the fixture file.
func (c *GeoapifyApiClientMock) SearchPlaces(ctx context.Context, point models.GeoPoint, category string, radiusMeters, limit int) (*geoapifymodels.PlacesResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	response, err := util.ReadPlacesResponseFromJSON(c.responsePath)
	if err != nil {
		log.Printf("[GeoapifyApiClientMock] Could not read places response from %s: %v", c.responsePath, err)
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if response.Features == nil {
		return nil, fmt.Errorf("%w: response has no features", ErrFetchFailed)
	}
	if limit > 0 && len(response.Features) > limit {
		response.Features = response.Features[:limit]
	}
	return response, nil
}
