package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"travel-buddy/api/geoapify"
	"travel-buddy/auth"
	"travel-buddy/booking"
	"travel-buddy/catalog"
	services "travel-buddy/service"
)

const SESSION_QUERY_ARG = "session"
const SESSION_HEADER = "X-Session-ID"

var errBadRequest = errors.New("bad request")

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("Error encoding response:", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, booking.ErrMissingField),
		errors.Is(err, booking.ErrUnrecognizedCity),
		errors.Is(err, booking.ErrInvalidDate),
		errors.Is(err, booking.ErrInvalidCount),
		errors.Is(err, auth.ErrMissingField),
		errors.Is(err, auth.ErrPasswordTooLong),
		errors.Is(err, services.ErrInvalidPlacesQuery),
		errors.Is(err, services.ErrMissingSession):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, catalog.ErrNotFound), errors.Is(err, auth.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, auth.ErrEmailInUse), errors.Is(err, services.ErrStaleResponse):
		return http.StatusConflict
	case errors.Is(err, services.ErrLocationUnavailable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, geoapify.ErrFetchFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// sessionID reads the caller's session from the query, then the header. It is
// empty when the caller sent neither.
func sessionID(r *http.Request) string {
	if s := strings.TrimSpace(r.URL.Query().Get(SESSION_QUERY_ARG)); s != "" {
		return s
	}
	if s := strings.TrimSpace(r.Header.Get(SESSION_HEADER)); s != "" {
		return s
	}
	return ""
}

func decodeBody(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}

// splitList parses a comma separated query value, dropping blanks.
func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Ping handles GET /ping
func Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}
