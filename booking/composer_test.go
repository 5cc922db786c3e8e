package booking

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-buddy/models"
)

func parseQuery(t *testing.T, raw string) (string, url.Values) {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u.Scheme + "://" + u.Host + u.Path, u.Query()
}

func TestFlightURL_OneWay(t *testing.T) {
	c := NewComposer(DefaultCityCodes)

	got, err := c.FlightURL(models.FlightSearch{
		From:          "Delhi",
		To:            "Mumbai",
		DepartureDate: "2025-06-06",
		Travelers:     2,
	})
	require.NoError(t, err)

	base, q := parseQuery(t, got)
	assert.Equal(t, FlightSearchBaseURL, base)
	assert.Equal(t, "DEL-BOM-06/06/2025", q.Get("itinerary"))
	assert.Equal(t, "O", q.Get("tripType"))
	assert.Equal(t, "A-2_C-0_I-0", q.Get("paxType"))
	assert.Equal(t, "false", q.Get("intl"))
	assert.Equal(t, "E", q.Get("cabinClass"))
	assert.Equal(t, "eng", q.Get("lang"))
}

func TestFlightURL_RoundTripInferredFromReturnDate(t *testing.T) {
	c := NewComposer(DefaultCityCodes)

	got, err := c.FlightURL(models.FlightSearch{
		From:          "BangaLore",
		To:            "GOA",
		DepartureDate: "2025-01-09",
		ReturnDate:    "2025-01-15",
		Travelers:     1,
	})
	require.NoError(t, err)

	_, q := parseQuery(t, got)
	assert.Equal(t, "R", q.Get("tripType"))
	assert.Equal(t, "BLR-GOI-09/01/2025_GOI-BLR-15/01/2025", q.Get("itinerary"))
}

func TestFlightURL_UnrecognizedCity(t *testing.T) {
	c := NewComposer(DefaultCityCodes)

	got, err := c.FlightURL(models.FlightSearch{From: "Atlantis", To: "Mumbai", DepartureDate: "2025-06-06", Travelers: 1})

	assert.True(t, errors.Is(err, ErrUnrecognizedCity))
	assert.Empty(t, got)
}

func TestFlightURL_ValidationErrors(t *testing.T) {
	c := NewComposer(DefaultCityCodes)
	tests := []struct {
		name   string
		search models.FlightSearch
		want   error
	}{
		{"missing from", models.FlightSearch{To: "Mumbai", DepartureDate: "2025-06-06", Travelers: 1}, ErrMissingField},
		{"missing date", models.FlightSearch{From: "Delhi", To: "Mumbai", Travelers: 1}, ErrMissingField},
		{"zero travelers", models.FlightSearch{From: "Delhi", To: "Mumbai", DepartureDate: "2025-06-06"}, ErrInvalidCount},
		{"bad date", models.FlightSearch{From: "Delhi", To: "Mumbai", DepartureDate: "06/06/2025", Travelers: 1}, ErrInvalidDate},
		{"return before departure", models.FlightSearch{From: "Delhi", To: "Mumbai", DepartureDate: "2025-06-06", ReturnDate: "2025-06-01", Travelers: 1}, ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.FlightURL(tt.search)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Empty(t, got)
		})
	}
}

func TestHotelURL(t *testing.T) {
	c := NewComposer(DefaultCityCodes)

	got, err := c.HotelURL(models.HotelSearch{
		Destination: "Chennai",
		CheckIn:     "2025-03-04",
		CheckOut:    "2025-03-07",
		Rooms:       2,
		Guests:      3,
	})
	require.NoError(t, err)

	base, q := parseQuery(t, got)
	assert.Equal(t, HotelSearchBaseURL, base)
	assert.Equal(t, "04032025", q.Get("checkin"))
	assert.Equal(t, "07032025", q.Get("checkout"))
	assert.Equal(t, "MAAA", q.Get("city"))
	assert.Equal(t, "MAAA", q.Get("locusId"))
	assert.Equal(t, "IN", q.Get("country"))
	assert.Equal(t, "city", q.Get("locusType"))
	assert.Equal(t, "Chennai", q.Get("searchText"))
	assert.Equal(t, "3e3e0e", q.Get("roomStayQualifier"))
	assert.Equal(t, "2e3e3e0e", q.Get("rsc"))
}

func TestHotelURL_Errors(t *testing.T) {
	c := NewComposer(DefaultCityCodes)

	_, err := c.HotelURL(models.HotelSearch{Destination: "Atlantis", CheckIn: "2025-03-04", CheckOut: "2025-03-07", Rooms: 1, Guests: 1})
	assert.True(t, errors.Is(err, ErrUnrecognizedCity))

	_, err = c.HotelURL(models.HotelSearch{Destination: "Goa", CheckIn: "2025-03-07", CheckOut: "2025-03-07", Rooms: 1, Guests: 1})
	assert.True(t, errors.Is(err, ErrInvalidDate))

	_, err = c.HotelURL(models.HotelSearch{Destination: "Goa", CheckIn: "2025-03-04", CheckOut: "2025-03-07", Rooms: 1})
	assert.True(t, errors.Is(err, ErrInvalidCount))

	_, err = c.HotelURL(models.HotelSearch{Rooms: 1, Guests: 1})
	require.True(t, errors.Is(err, ErrMissingField))
	assert.True(t, strings.Contains(err.Error(), "check_in, check_out, destination"))
}

func TestComposer_Cities(t *testing.T) {
	c := NewComposer(map[string]string{"pune": "PNQ", "agra": "AGR"})

	assert.Equal(t, []string{"agra", "pune"}, c.Cities())
	code, err := c.ResolveCity("PuNe")
	require.NoError(t, err)
	assert.Equal(t, "PNQ", code)

	_, err = c.ResolveCity(" pune ")
	assert.True(t, errors.Is(err, ErrUnrecognizedCity))
	_, err = c.ResolveCity("pun")
	assert.True(t, errors.Is(err, ErrUnrecognizedCity))
}
