package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"travel-buddy/models"
)

// ErrLocationUnavailable means no usable position: the user denied access,
// the device could not provide one, or the coordinates were invalid.
var ErrLocationUnavailable = errors.New("location unavailable")

// Locator yields the caller's current position once.
type Locator interface {
	CurrentPosition(ctx context.Context) (models.GeoPoint, error)
}

// QueryLocator reads the position the browser acquired from lat/lon query
// parameters. denied=true reports that the user refused the permission prompt.
type QueryLocator struct {
	values url.Values
}

func NewQueryLocator(values url.Values) *QueryLocator {
	return &QueryLocator{values: values}
}

func (l *QueryLocator) CurrentPosition(ctx context.Context) (models.GeoPoint, error) {
	if denied, _ := strconv.ParseBool(l.values.Get("denied")); denied {
		return models.GeoPoint{}, fmt.Errorf("%w: permission denied", ErrLocationUnavailable)
	}

	rawLat := strings.TrimSpace(l.values.Get("lat"))
	rawLon := strings.TrimSpace(l.values.Get("lon"))
	if rawLat == "" || rawLon == "" {
		return models.GeoPoint{}, fmt.Errorf("%w: lat and lon are required", ErrLocationUnavailable)
	}
	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return models.GeoPoint{}, fmt.Errorf("%w: bad lat %q", ErrLocationUnavailable, rawLat)
	}
	lon, err := strconv.ParseFloat(rawLon, 64)
	if err != nil {
		return models.GeoPoint{}, fmt.Errorf("%w: bad lon %q", ErrLocationUnavailable, rawLon)
	}

	p := models.GeoPoint{Latitude: lat, Longitude: lon}
	if err := p.Validate(); err != nil {
		return models.GeoPoint{}, fmt.Errorf("%w: %v", ErrLocationUnavailable, err)
	}
	return p, nil
}

// StaticLocator always reports the same position.
type StaticLocator struct {
	Point models.GeoPoint
	Err   error
}

func (l StaticLocator) CurrentPosition(ctx context.Context) (models.GeoPoint, error) {
	return l.Point, l.Err
}
