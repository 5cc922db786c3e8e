package services

import (
	"log"

	"travel-buddy/booking"
	"travel-buddy/models"
)

type BookingService struct {
	composer *booking.Composer
}

func NewBookingService(composer *booking.Composer) *BookingService {
	return &BookingService{composer: composer}
}

func (bs *BookingService) FlightLink(s models.FlightSearch) (models.BookingLink, error) {
	u, err := bs.composer.FlightURL(s)
	if err != nil {
		log.Printf("[BookingService] Flight link rejected: %v", err)
		return models.BookingLink{}, err
	}
	return models.BookingLink{URL: u}, nil
}

func (bs *BookingService) HotelLink(s models.HotelSearch) (models.BookingLink, error) {
	u, err := bs.composer.HotelURL(s)
	if err != nil {
		log.Printf("[BookingService] Hotel link rejected: %v", err)
		return models.BookingLink{}, err
	}
	return models.BookingLink{URL: u}, nil
}

// Cities lists the city names the composer recognizes.
func (bs *BookingService) Cities() []string {
	return bs.composer.Cities()
}
