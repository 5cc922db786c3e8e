package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"travel-buddy/models"
)

var (
	kyoto     = models.GeoPoint{Latitude: 35.0116, Longitude: 135.7681}
	barcelona = models.GeoPoint{Latitude: 41.3851, Longitude: 2.1734}
	bangalore = models.GeoPoint{Latitude: 12.9716, Longitude: 77.5946}
)

func TestDistance_SamePointIsZero(t *testing.T) {
	for _, p := range []models.GeoPoint{kyoto, barcelona, bangalore, {}} {
		d := Distance(p, p)
		assert.InDelta(t, 0, d, 1e-6)
		assert.Equal(t, "0m away", FormatDistance(d))
	}
}

func TestDistance_Symmetric(t *testing.T) {
	pairs := [][2]models.GeoPoint{{kyoto, barcelona}, {barcelona, bangalore}, {bangalore, kyoto}}
	for _, p := range pairs {
		assert.InDelta(t, Distance(p[0], p[1]), Distance(p[1], p[0]), 1e-6)
	}
}

func TestDistance_KnownValues(t *testing.T) {
	// one degree of longitude on the equator
	oneDegree := Distance(models.GeoPoint{}, models.GeoPoint{Longitude: 1})
	assert.InDelta(t, EarthRadiusMeters*math.Pi/180, oneDegree, 1e-3)

	// Kyoto to Barcelona is roughly 10,290 km
	assert.InDelta(t, 10_290_671, Distance(kyoto, barcelona), 100)
}

func TestDistance_NonNegative(t *testing.T) {
	a := models.GeoPoint{Latitude: -33.9249, Longitude: 18.4241}
	b := models.GeoPoint{Latitude: 40.7128, Longitude: -74.0060}
	assert.GreaterOrEqual(t, Distance(a, b), 0.0)
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		meters float64
		want   string
	}{
		{0, "0m away"},
		{12.4, "12m away"},
		{999, "999m away"},
		{999.6, "1.0km away"},
		{1000, "1.0km away"},
		{1500, "1.5km away"},
		{12345, "12.3km away"},
		{math.NaN(), DistanceUnknown},
		{math.Inf(1), DistanceUnknown},
		{-1, DistanceUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDistance(tt.meters), "meters=%v", tt.meters)
	}
}

func TestMapsURL(t *testing.T) {
	assert.Equal(t,
		"https://www.google.com/maps/search/?api=1&query=12.9716,77.5946",
		MapsURL(bangalore))
}
