package services

import (
	"fmt"
	"time"

	"travel-buddy/catalog"
	"travel-buddy/dao/redis"
	"travel-buddy/geo"
	"travel-buddy/models"
)

type CatalogService struct {
	catalog        *catalog.Catalog
	destinationDao *redis.RedisDestinationDAO
}

func NewCatalogService(c *catalog.Catalog, destinationDao *redis.RedisDestinationDAO) *CatalogService {
	return &CatalogService{
		catalog:        c,
		destinationDao: destinationDao,
	}
}

// ListListings filters then sorts one catalog kind.
func (cs *CatalogService) ListListings(kind models.ListingKind, criteria models.FilterCriteria, key models.SortKey) (*models.ListingsResponse, error) {
	filtered := catalog.Filter(cs.catalog.List(kind), criteria)
	sorted, err := catalog.Sort(filtered, key)
	if err != nil {
		return nil, err
	}
	categories, locations := cs.catalog.Facets(kind)
	return &models.ListingsResponse{
		Kind:       kind,
		Sort:       key,
		Date:       criteria.Date,
		Count:      len(sorted),
		Items:      sorted,
		Categories: categories,
		Locations:  locations,
	}, nil
}

func (cs *CatalogService) GetListing(kind models.ListingKind, id string) (models.Listing, error) {
	return cs.catalog.Get(kind, id)
}

func (cs *CatalogService) GetDestination(slug string) (models.Listing, error) {
	return cs.catalog.DestinationBySlug(slug)
}

func (cs *CatalogService) FeaturedDestinations() []models.Listing {
	return cs.catalog.Featured()
}

// LocationOverview gathers the activities, cuisines and products of a destination.
func (cs *CatalogService) LocationOverview(slug string) (*models.LocationOverview, error) {
	d, err := cs.catalog.DestinationBySlug(slug)
	if err != nil {
		return nil, err
	}
	return &models.LocationOverview{
		Destination: d,
		Activities:  cs.catalog.AtLocation(models.KindActivity, slug),
		Cuisines:    cs.catalog.AtLocation(models.KindCuisine, slug),
		Products:    cs.catalog.AtLocation(models.KindProduct, slug),
	}, nil
}

// NearbyDestinations queries the geo index around origin, nearest first.
func (cs *CatalogService) NearbyDestinations(origin models.GeoPoint, radiusMeters float64) ([]models.NearbyDestination, error) {
	if err := origin.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLocationUnavailable, err)
	}
	destinations, err := cs.destinationDao.GetNearbyDestinations(origin.Latitude, origin.Longitude, radiusMeters)
	if err != nil {
		return nil, err
	}
	nearby := make([]models.NearbyDestination, 0, len(destinations))
	for _, d := range destinations {
		meters := geo.Distance(origin, d.Point())
		nearby = append(nearby, models.NearbyDestination{
			Listing:        d,
			DistanceMeters: meters,
			DistanceLabel:  geo.FormatDistance(meters),
		})
	}
	return nearby, nil
}

// ParseDate reads the optional travel date, YYYY-MM-DD.
func ParseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("bad date %q: %w", raw, err)
	}
	return &t, nil
}
