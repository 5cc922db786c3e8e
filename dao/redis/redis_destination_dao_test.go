package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-buddy/db"
	"travel-buddy/models"
)

func destination(id string, lat, lon float64) models.Listing {
	return models.Listing{
		ID:        id,
		Kind:      models.KindDestination,
		Slug:      id,
		Name:      id,
		Latitude:  lat,
		Longitude: lon,
	}
}

func TestRedisDestinationDAO_UpsertAndNearby(t *testing.T) {
	dao := NewRedisDestinationDAO(db.NewMockRedisClient(context.Background()))

	require.NoError(t, dao.UpsertDestination(destination("rome", 41.9028, 12.4964)))
	require.NoError(t, dao.UpsertDestination(destination("barcelona", 41.3851, 2.1734)))
	require.NoError(t, dao.UpsertDestination(destination("kyoto", 35.0116, 135.7681)))

	// From Florence: Rome is ~230km, Barcelona ~790km.
	got, err := dao.GetNearbyDestinations(43.7696, 11.2558, 1_000_000)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "rome", got[0].ID)
	assert.Equal(t, "barcelona", got[1].ID)
	assert.Equal(t, models.KindDestination, got[0].Kind)
}

func TestRedisDestinationDAO_UpsertReplaces(t *testing.T) {
	dao := NewRedisDestinationDAO(db.NewMockRedisClient(context.Background()))
	d := destination("rome", 41.9028, 12.4964)
	require.NoError(t, dao.UpsertDestination(d))
	d.Name = "Roma"
	require.NoError(t, dao.UpsertDestination(d))

	got, err := dao.GetNearbyDestinations(41.9028, 12.4964, 100)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Roma", got[0].Name)
}

func TestRedisDestinationDAO_RejectsOtherKinds(t *testing.T) {
	dao := NewRedisDestinationDAO(db.NewMockRedisClient(context.Background()))

	err := dao.UpsertDestination(models.Listing{ID: "a1", Kind: models.KindActivity})

	assert.Error(t, err)
}

func TestRedisDestinationDAO_ListAndDelete(t *testing.T) {
	dao := NewRedisDestinationDAO(db.NewMockRedisClient(context.Background()))
	require.NoError(t, dao.UpsertDestination(destination("rome", 41.9028, 12.4964)))
	require.NoError(t, dao.UpsertDestination(destination("bali", -8.3405, 115.092)))

	ids, err := dao.ListIndexedDestinationIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"bali", "rome"}, ids)

	require.NoError(t, dao.DeleteDestination("rome"))

	ids, err = dao.ListIndexedDestinationIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"bali"}, ids)

	got, err := dao.GetNearbyDestinations(41.9028, 12.4964, 1000)
	require.NoError(t, err)
	assert.Empty(t, got)
}
