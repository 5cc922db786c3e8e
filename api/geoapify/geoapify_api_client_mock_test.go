package geoapify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-buddy/models"
)

const fixturePath = "../../resources/places_response.json"

func TestGeoapifyApiClientMock_ReadsFixture(t *testing.T) {
	client := NewGeoapifyApiClientMock(fixturePath)

	got, err := client.SearchPlaces(context.Background(), models.GeoPoint{Latitude: 35.0116, Longitude: 135.7681}, "tourism.sights", 5000, 10)

	require.NoError(t, err)
	assert.NotEmpty(t, got.Features)
	assert.LessOrEqual(t, len(got.Features), 10)
	for _, f := range got.Features {
		assert.NotEmpty(t, f.Properties.Name)
	}
}

func TestGeoapifyApiClientMock_HonorsLimit(t *testing.T) {
	client := NewGeoapifyApiClientMock(fixturePath)

	got, err := client.SearchPlaces(context.Background(), models.GeoPoint{}, "tourism.sights", 5000, 2)

	require.NoError(t, err)
	assert.Len(t, got.Features, 2)
}

func TestGeoapifyApiClientMock_MissingFile(t *testing.T) {
	client := NewGeoapifyApiClientMock("does-not-exist.json")

	_, err := client.SearchPlaces(context.Background(), models.GeoPoint{}, "tourism.sights", 5000, 10)

	assert.True(t, errors.Is(err, ErrFetchFailed))
}
