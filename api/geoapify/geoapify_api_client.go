package geoapify

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"travel-buddy/api"
	"travel-buddy/models"
	geoapifymodels "travel-buddy/models/geoapify"
)

const placesEndpoint = "/places"

// GeoapifyApiClient embeds the common HTTPClient
type GeoapifyApiClient struct {
	*api.HTTPClient
	apiKey string
}

// NewGeoapifyApiClient creates a new instance of GeoapifyApiClient. The key is
// sent as the apiKey query parameter on every request.
func NewGeoapifyApiClient(httpClient *api.HTTPClient, apiKey string) *GeoapifyApiClient {
	return &GeoapifyApiClient{
		HTTPClient: httpClient,
		apiKey:     apiKey,
	}
}

// SearchPlaces issues exactly one GET /places call. There is no retry and no caching.
func (c *GeoapifyApiClient) SearchPlaces(ctx context.Context, point models.GeoPoint, category string, radiusMeters, limit int) (*geoapifymodels.PlacesResponse, error) {
	query := url.Values{}
	query.Set("categories", category)
	query.Set("filter", CircleFilter(point, radiusMeters))
	query.Set("limit", strconv.Itoa(limit))
	query.Set("apiKey", c.apiKey)

	var response geoapifymodels.PlacesResponse
	if err := c.RequestWithContext(ctx, "GET", placesEndpoint, query, nil, nil, &response); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, redactAPIKey(err))
	}
	if response.Features == nil {
		return nil, fmt.Errorf("%w: response has no features", ErrFetchFailed)
	}
	return &response, nil
}

// redactAPIKey strips the query from transport errors, which echo the request URL.
func redactAPIKey(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	redacted := *urlErr
	if u, perr := url.Parse(urlErr.URL); perr == nil {
		u.RawQuery = ""
		redacted.URL = u.String()
	} else {
		redacted.URL = "<redacted>"
	}
	return &redacted
}

// CircleFilter renders the circle:<lon>,<lat>,<radius> filter value. Longitude comes first.
func CircleFilter(point models.GeoPoint, radiusMeters int) string {
	return fmt.Sprintf("circle:%s,%s,%d",
		strconv.FormatFloat(point.Longitude, 'f', -1, 64),
		strconv.FormatFloat(point.Latitude, 'f', -1, 64),
		radiusMeters)
}
