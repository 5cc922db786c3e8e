package geo

import (
	"fmt"
	"math"

	"github.com/golang/geo/s2"

	"travel-buddy/models"
)

// EarthRadiusMeters is the fixed mean Earth radius used for all distances.
const EarthRadiusMeters = 6371000.0

// DistanceUnknown is rendered instead of an invalid distance.
const DistanceUnknown = "Distance unknown"

// Distance returns the great-circle distance between a and b in meters.
// s2 computes the central angle with the haversine form.
func Distance(a, b models.GeoPoint) float64 {
	p1 := s2.LatLngFromDegrees(a.Latitude, a.Longitude)
	p2 := s2.LatLngFromDegrees(b.Latitude, b.Longitude)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// FormatDistance renders meters as "<N>m away" below one kilometer and
// "<N.N>km away" from there on.
func FormatDistance(meters float64) string {
	if math.IsNaN(meters) || math.IsInf(meters, 0) || meters < 0 {
		return DistanceUnknown
	}
	rounded := math.Round(meters)
	if rounded < 1000 {
		return fmt.Sprintf("%dm away", int64(rounded))
	}
	return fmt.Sprintf("%.1fkm away", meters/1000)
}

// MapsURL links to a Google Maps search centred on p.
func MapsURL(p models.GeoPoint) string {
	return fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%g,%g", p.Latitude, p.Longitude)
}
