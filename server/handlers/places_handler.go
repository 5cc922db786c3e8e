package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"travel-buddy/api/geoapify"
	"travel-buddy/models"
	services "travel-buddy/service"
	"travel-buddy/util"
)

const CATEGORY_QUERY_ARG = "category"

type PlacesHandler struct {
	placesService *services.PlacesService
}

func NewPlacesHandler(placesService *services.PlacesService) *PlacesHandler {
	return &PlacesHandler{placesService: placesService}
}

// GetNearbyPlaces expects ?category={taxonomy}&lat={float}&lon={float}[&radius={meters}][&denied=true]&session=id
// The session may also come from the X-Session-ID header.
func (h *PlacesHandler) GetNearbyPlaces(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	session := sessionID(r)

	radius := 0
	if raw := vals.Get(RADIUS_QUERY_ARG); raw != "" {
		var err error
		if radius, err = strconv.Atoi(raw); err != nil {
			writeError(w, fmt.Errorf("%w: invalid argument %s", services.ErrInvalidPlacesQuery, RADIUS_QUERY_ARG))
			return
		}
	}

	result, err := h.placesService.LookupNearby(r.Context(), services.NewQueryLocator(vals), services.PlacesQuery{
		Session:      session,
		Category:     vals.Get(CATEGORY_QUERY_ARG),
		RadiusMeters: radius,
	})
	if err != nil {
		h.writeLookupError(w, session, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// writeLookupError keeps the page usable: recoverable failures carry a retry
// hint and, for fetch failures, the previously committed results.
func (h *PlacesHandler) writeLookupError(w http.ResponseWriter, session string, err error) {
	body := map[string]interface{}{"error": err.Error()}
	switch {
	case errors.Is(err, services.ErrLocationUnavailable):
		body["error"] = "Unable to get your location. Please enable location services."
		body["retry"] = true
	case errors.Is(err, geoapify.ErrFetchFailed):
		body["error"] = "Could not load nearby places."
		body["retry"] = true
		if last, ok := h.placesService.LastResults(session); ok {
			body["previous"] = last
		}
	}
	writeJSON(w, statusFor(err), body)
}

// GetLastPlaces serves the session's last committed lookup.
func (h *PlacesHandler) GetLastPlaces(w http.ResponseWriter, r *http.Request) {
	session := sessionID(r)
	if session == "" {
		writeError(w, services.ErrMissingSession)
		return
	}
	last, ok := h.placesService.LastResults(session)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no places lookup yet"})
		return
	}
	writeJSON(w, http.StatusOK, last)
}

// GetPlacesMap renders the session's last committed lookup as an HTML map.
func (h *PlacesHandler) GetPlacesMap(w http.ResponseWriter, r *http.Request) {
	session := sessionID(r)
	if session == "" {
		writeError(w, services.ErrMissingSession)
		return
	}
	last, ok := h.placesService.LastResults(session)
	if !ok {
		last = &models.NearbyPlacesResponse{}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.PlotNearbyPlaces(w, last.Origin, last.Places); err != nil {
		log.Println("Error rendering places map:", err)
	}
}
