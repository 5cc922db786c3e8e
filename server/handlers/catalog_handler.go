package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"travel-buddy/models"
	services "travel-buddy/service"
)

const (
	SEARCH_QUERY_ARG     = "search"
	CATEGORIES_QUERY_ARG = "categories"
	LOCATIONS_QUERY_ARG  = "locations"
	PRICES_QUERY_ARG     = "prices"
	SORT_QUERY_ARG       = "sort"
	DATE_QUERY_ARG       = "date"
	LAT_QUERY_ARG        = "lat"
	LON_QUERY_ARG        = "lon"
	RADIUS_QUERY_ARG     = "radius"
)

// DEFAULT_DESTINATIONS_RADIUS_METERS applies to /v1/destinations/nearby without a radius.
const DEFAULT_DESTINATIONS_RADIUS_METERS = 1_000_000.0

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListListings serves the filtered, sorted listings of one kind.
func (h *CatalogHandler) ListListings(kind models.ListingKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		criteria, key, err := parseListingsQuery(r.URL.Query())
		if err != nil {
			writeError(w, err)
			return
		}
		page, err := h.catalogService.ListListings(kind, criteria, key)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, page)
	}
}

// GetListing serves /v1/{kind}/{id}.
func (h *CatalogHandler) GetListing(kind models.ListingKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, err := h.catalogService.GetListing(kind, mux.Vars(r)["id"])
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, l)
	}
}

func (h *CatalogHandler) GetDestination(w http.ResponseWriter, r *http.Request) {
	d, err := h.catalogService.GetDestination(mux.Vars(r)["slug"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *CatalogHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	overview, err := h.catalogService.LocationOverview(mux.Vars(r)["slug"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

func (h *CatalogHandler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	featured := h.catalogService.FeaturedDestinations()
	if featured == nil {
		featured = []models.Listing{}
	}
	writeJSON(w, http.StatusOK, featured)
}

// GetNearbyDestinations expects ?lat={float}&lon={float}[&radius={meters}]
func (h *CatalogHandler) GetNearbyDestinations(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	lat, err := parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		writeError(w, err)
		return
	}
	lon, err := parseArgFloat64(vals, LON_QUERY_ARG)
	if err != nil {
		writeError(w, err)
		return
	}
	radius := DEFAULT_DESTINATIONS_RADIUS_METERS
	if vals.Get(RADIUS_QUERY_ARG) != "" {
		if radius, err = parseArgFloat64(vals, RADIUS_QUERY_ARG); err != nil || radius <= 0 {
			writeError(w, fmt.Errorf("%w: invalid argument %s", errBadRequest, RADIUS_QUERY_ARG))
			return
		}
	}

	nearby, err := h.catalogService.NearbyDestinations(models.GeoPoint{Latitude: lat, Longitude: lon}, radius)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nearby)
}

func parseListingsQuery(vals url.Values) (models.FilterCriteria, models.SortKey, error) {
	criteria := models.FilterCriteria{
		SearchText:   vals.Get(SEARCH_QUERY_ARG),
		CategoryTags: splitList(vals.Get(CATEGORIES_QUERY_ARG)),
		LocationTags: splitList(vals.Get(LOCATIONS_QUERY_ARG)),
	}
	for _, raw := range splitList(vals.Get(PRICES_QUERY_ARG)) {
		tier, err := models.ParsePriceTier(raw)
		if err != nil {
			return criteria, "", fmt.Errorf("%w: %v", errBadRequest, err)
		}
		criteria.PriceTiers = append(criteria.PriceTiers, tier)
	}
	date, err := services.ParseDate(vals.Get(DATE_QUERY_ARG))
	if err != nil {
		return criteria, "", fmt.Errorf("%w: %v", errBadRequest, err)
	}
	criteria.Date = date

	key, err := models.ParseSortKey(vals.Get(SORT_QUERY_ARG))
	if err != nil {
		return criteria, "", fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return criteria, key, nil
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	f, err := strconv.ParseFloat(vals.Get(name), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid argument %s", errBadRequest, name)
	}
	return f, nil
}
