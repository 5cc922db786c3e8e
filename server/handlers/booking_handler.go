package handlers

import (
	"net/http"

	"travel-buddy/models"
	services "travel-buddy/service"
)

type BookingHandler struct {
	bookingService *services.BookingService
}

func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

func (h *BookingHandler) PostFlight(w http.ResponseWriter, r *http.Request) {
	var search models.FlightSearch
	if err := decodeBody(r, &search); err != nil {
		writeError(w, err)
		return
	}
	link, err := h.bookingService.FlightLink(search)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, link)
}

func (h *BookingHandler) PostHotel(w http.ResponseWriter, r *http.Request) {
	var search models.HotelSearch
	if err := decodeBody(r, &search); err != nil {
		writeError(w, err)
		return
	}
	link, err := h.bookingService.HotelLink(search)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, link)
}

func (h *BookingHandler) GetCities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.bookingService.Cities())
}
