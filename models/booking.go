package models

// FlightSearch is the flight leg of the booking form. Dates are YYYY-MM-DD.
type FlightSearch struct {
	From          string `json:"from"`
	To            string `json:"to"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date,omitempty"`
	Travelers     int    `json:"travelers"`
}

// HotelSearch is the hotel leg of the booking form. Dates are YYYY-MM-DD.
type HotelSearch struct {
	Destination string `json:"destination"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	Rooms       int    `json:"rooms"`
	Guests      int    `json:"guests"`
}

// BookingLink is the composed partner deep link.
type BookingLink struct {
	URL string `json:"url"`
}
