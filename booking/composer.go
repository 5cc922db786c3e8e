package booking

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"travel-buddy/models"
)

const (
	FlightSearchBaseURL = "https://www.makemytrip.com/flight/search"
	HotelSearchBaseURL  = "https://www.makemytrip.com/hotels/hotel-listing"

	// InputDateLayout is the layout of dates coming from the booking form.
	InputDateLayout = "2006-01-02"

	flightDateLayout = "02/01/2006"
	hotelDateLayout  = "02012006"
)

var (
	ErrMissingField     = errors.New("missing required field")
	ErrUnrecognizedCity = errors.New("unrecognized city")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidCount     = errors.New("invalid count")
)

// Composer turns booking form state into partner deep links. It performs no
// I/O and either returns a complete URL or an error.
type Composer struct {
	cityCodes     map[string]string
	flightBaseURL string
	hotelBaseURL  string
}

// NewComposer builds a composer over the given city table. Keys must be lower case.
func NewComposer(cityCodes map[string]string) *Composer {
	return &Composer{
		cityCodes:     cityCodes,
		flightBaseURL: FlightSearchBaseURL,
		hotelBaseURL:  HotelSearchBaseURL,
	}
}

// Cities lists the recognized city names, sorted.
func (c *Composer) Cities() []string {
	names := make([]string, 0, len(c.cityCodes))
	for name := range c.cityCodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveCity does an exact, case-insensitive lookup of a city name.
func (c *Composer) ResolveCity(name string) (string, error) {
	code, ok := c.cityCodes[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnrecognizedCity, name)
	}
	return code, nil
}

// FlightURL composes the flight search link. A return date makes it a round trip.
func (c *Composer) FlightURL(s models.FlightSearch) (string, error) {
	if err := requireFields(map[string]string{
		"from":           s.From,
		"to":             s.To,
		"departure_date": s.DepartureDate,
	}); err != nil {
		return "", err
	}
	if s.Travelers < 1 {
		return "", fmt.Errorf("%w: travelers must be at least 1, got %d", ErrInvalidCount, s.Travelers)
	}

	fromCode, err := c.ResolveCity(s.From)
	if err != nil {
		return "", err
	}
	toCode, err := c.ResolveCity(s.To)
	if err != nil {
		return "", err
	}

	departure, err := parseDate("departure_date", s.DepartureDate)
	if err != nil {
		return "", err
	}
	itinerary := fmt.Sprintf("%s-%s-%s", fromCode, toCode, departure.Format(flightDateLayout))

	tripType := "O"
	if strings.TrimSpace(s.ReturnDate) != "" {
		ret, err := parseDate("return_date", s.ReturnDate)
		if err != nil {
			return "", err
		}
		if ret.Before(departure) {
			return "", fmt.Errorf("%w: return_date is before departure_date", ErrInvalidDate)
		}
		tripType = "R"
		itinerary += fmt.Sprintf("_%s-%s-%s", toCode, fromCode, ret.Format(flightDateLayout))
	}

	q := url.Values{}
	q.Set("itinerary", itinerary)
	q.Set("tripType", tripType)
	q.Set("paxType", fmt.Sprintf("A-%d_C-0_I-0", s.Travelers))
	q.Set("intl", "false")
	q.Set("cabinClass", "E")
	q.Set("lang", "eng")
	return c.flightBaseURL + "?" + q.Encode(), nil
}

// HotelURL composes the hotel listing link.
func (c *Composer) HotelURL(s models.HotelSearch) (string, error) {
	if err := requireFields(map[string]string{
		"destination": s.Destination,
		"check_in":    s.CheckIn,
		"check_out":   s.CheckOut,
	}); err != nil {
		return "", err
	}
	if s.Rooms < 1 {
		return "", fmt.Errorf("%w: rooms must be at least 1, got %d", ErrInvalidCount, s.Rooms)
	}
	if s.Guests < 1 {
		return "", fmt.Errorf("%w: guests must be at least 1, got %d", ErrInvalidCount, s.Guests)
	}

	code, err := c.ResolveCity(s.Destination)
	if err != nil {
		return "", err
	}
	checkIn, err := parseDate("check_in", s.CheckIn)
	if err != nil {
		return "", err
	}
	checkOut, err := parseDate("check_out", s.CheckOut)
	if err != nil {
		return "", err
	}
	if !checkOut.After(checkIn) {
		return "", fmt.Errorf("%w: check_out must be after check_in", ErrInvalidDate)
	}

	cityCode := code + "A"
	roomStayQualifier := fmt.Sprintf("3e%de0e", s.Guests)

	q := url.Values{}
	q.Set("checkin", checkIn.Format(hotelDateLayout))
	q.Set("checkout", checkOut.Format(hotelDateLayout))
	q.Set("city", cityCode)
	q.Set("country", "IN")
	q.Set("locusId", cityCode)
	q.Set("locusType", "city")
	q.Set("searchText", s.Destination)
	q.Set("regionNearByExp", "3")
	q.Set("roomStayQualifier", roomStayQualifier)
	q.Set("rsc", strconv.Itoa(s.Rooms)+"e"+roomStayQualifier)
	return c.hotelBaseURL + "?" + q.Encode(), nil
}

func requireFields(fields map[string]string) error {
	var missing []string
	for name, v := range fields {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	return nil
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(InputDateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q is not YYYY-MM-DD", ErrInvalidDate, field, value)
	}
	return t, nil
}
