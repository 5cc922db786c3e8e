package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"travel-buddy/api/geoapify"
	"travel-buddy/auth"
	"travel-buddy/booking"
	"travel-buddy/catalog"
	"travel-buddy/dao/redis"
	"travel-buddy/db"
	"travel-buddy/server/handlers"
	"travel-buddy/server/middleware"
	services "travel-buddy/service"
	"travel-buddy/util"
)

func newTestRouter(t *testing.T, placesLimit int) *mux.Router {
	t.Helper()

	file, err := util.ReadCatalogFromJSON("../resources/catalog.json")
	require.NoError(t, err)
	c, err := catalog.New(*file)
	require.NoError(t, err)

	redisClient := db.NewMockRedisClient(context.Background())
	destinationDao := redis.NewRedisDestinationDAO(redisClient)
	_, err = services.NewDestinationsIndexerService(c, destinationDao).IndexDestinations()
	require.NoError(t, err)

	sqlite, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })
	authService := auth.NewService(auth.NewUserRepository(sqlite), auth.NewTokenIssuer("test", time.Hour), bcrypt.MinCost)

	limiter := middleware.NewRateLimiter(placesLimit, time.Minute)
	t.Cleanup(limiter.Stop)

	muxRouter := mux.NewRouter()
	appRouter := NewRouter(
		handlers.NewCatalogHandler(services.NewCatalogService(c, destinationDao)),
		handlers.NewPlacesHandler(services.NewPlacesService(geoapify.NewGeoapifyApiClientMock("../resources/places_response.json"), 5000, 10)),
		handlers.NewBookingHandler(services.NewBookingService(booking.NewComposer(booking.DefaultCityCodes))),
		handlers.NewPromptHandler(services.NewLocationPromptService(redis.NewRedisPreferenceDAO(redisClient))),
		handlers.NewAuthHandler(authService),
		limiter,
		authService,
		muxRouter,
	)
	appRouter.RegisterRoutes()
	return muxRouter
}

func serve(router http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestRouter_RegisterRoutes(t *testing.T) {
	router := newTestRouter(t, 100)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		statusCode int
		contains   string
	}{
		{"Ping", "GET", "/ping", "", http.StatusOK, `"pong"`},
		{"List destinations", "GET", "/v1/destinations?categories=beach&sort=rating", "", http.StatusOK, `"count":4`},
		{"List cuisines by price", "GET", "/v1/cuisines?prices=$", "", http.StatusOK, `"count":2`},
		{"Bad sort", "GET", "/v1/products?sort=popularity", "", http.StatusBadRequest, "unknown sort key"},
		{"Bad price", "GET", "/v1/products?prices=cheap", "", http.StatusBadRequest, "error"},
		{"Featured", "GET", "/v1/destinations/featured", "", http.StatusOK, "santorini"},
		{"Nearby destinations", "GET", "/v1/destinations/nearby?lat=43.7696&lon=11.2558&radius=500000", "", http.StatusOK, "230.9km away"},
		{"Nearby destinations bad lat", "GET", "/v1/destinations/nearby?lat=x&lon=1", "", http.StatusBadRequest, "invalid argument lat"},
		{"Destination by slug", "GET", "/v1/destinations/kyoto", "", http.StatusOK, `"slug":"kyoto"`},
		{"Unknown destination", "GET", "/v1/destinations/atlantis", "", http.StatusNotFound, "not found"},
		{"Location overview", "GET", "/v1/locations/rome", "", http.StatusOK, "product-7"},
		{"Activity detail", "GET", "/v1/activities/activity-1", "", http.StatusOK, `"id":"activity-1"`},
		{"Activity id on cuisine route", "GET", "/v1/cuisines/activity-1", "", http.StatusNotFound, "not found"},
		{"Places denied", "GET", "/v1/places/nearby?category=tourism.sights&denied=true&session=s0", "", http.StatusUnprocessableEntity, `"retry":true`},
		{"Places missing category", "GET", "/v1/places/nearby?lat=35&lon=135&session=s0", "", http.StatusBadRequest, "category is required"},
		{"Places missing session", "GET", "/v1/places/nearby?category=tourism.sights&lat=35&lon=135", "", http.StatusBadRequest, "session is required"},
		{"Places last missing session", "GET", "/v1/places/nearby/last", "", http.StatusBadRequest, "session is required"},
		{"Places map missing session", "GET", "/v1/places/nearby/map", "", http.StatusBadRequest, "session is required"},
		{"Places ok", "GET", "/v1/places/nearby?category=tourism.sights&lat=35.0116&lon=135.7681&session=s1", "", http.StatusOK, "Kiyomizu-dera"},
		{"Places last none", "GET", "/v1/places/nearby/last?session=nobody", "", http.StatusNotFound, "no places lookup yet"},
		{"Places map", "GET", "/v1/places/nearby/map?session=nobody", "", http.StatusOK, "Nearby Places"},
		{"Flight link", "POST", "/v1/bookings/flights", `{"from":"Delhi","to":"Mumbai","departure_date":"2025-06-06","travelers":2}`, http.StatusOK, "DEL-BOM-06%2F06%2F2025"},
		{"Flight unknown city", "POST", "/v1/bookings/flights", `{"from":"Atlantis","to":"Mumbai","departure_date":"2025-06-06","travelers":2}`, http.StatusBadRequest, "unrecognized city"},
		{"Hotel link", "POST", "/v1/bookings/hotels", `{"destination":"Goa","check_in":"2025-06-06","check_out":"2025-06-08","rooms":1,"guests":2}`, http.StatusOK, "GOIA"},
		{"Hotel malformed body", "POST", "/v1/bookings/hotels", `{"destination":`, http.StatusBadRequest, "bad request"},
		{"Cities", "GET", "/v1/bookings/cities", "", http.StatusOK, "visakhapatnam"},
		{"Prompt state", "GET", "/v1/prompts/location?session=p1", "", http.StatusOK, `"should_prompt":true`},
		{"Prompt state missing session", "GET", "/v1/prompts/location", "", http.StatusBadRequest, "session is required"},
		{"Prompt dismiss missing session", "POST", "/v1/prompts/location/dismiss", "", http.StatusBadRequest, "session is required"},
		{"Me without token", "GET", "/v1/auth/me", "", http.StatusUnauthorized, "Missing bearer token"},
		{"Wrong method", "GET", "/v1/bookings/flights", "", http.StatusMethodNotAllowed, ""},
		{"Invalid Route", "GET", "/invalid", "", http.StatusNotFound, ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rr := serve(router, test.method, test.path, test.body, nil)

			assert.Equal(t, test.statusCode, rr.Code, rr.Body.String())
			if test.contains != "" {
				assert.Contains(t, rr.Body.String(), test.contains)
			}
		})
	}
}

func TestRouter_PlacesLastAfterLookup(t *testing.T) {
	router := newTestRouter(t, 100)

	rr := serve(router, "GET", "/v1/places/nearby?category=tourism.sights&lat=35.0116&lon=135.7681", "", map[string]string{"X-Session-ID": "abc"})
	require.Equal(t, http.StatusOK, rr.Code)

	last := serve(router, "GET", "/v1/places/nearby/last", "", map[string]string{"X-Session-ID": "abc"})
	require.Equal(t, http.StatusOK, last.Code)
	var body struct {
		Sequence int `json:"sequence"`
		Places   []struct {
			Name          string `json:"name"`
			DistanceLabel string `json:"distance_label"`
		} `json:"places"`
	}
	require.NoError(t, json.Unmarshal(last.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Sequence)
	assert.Len(t, body.Places, 10)
	assert.Equal(t, "Kiyomizu-dera", body.Places[0].Name)
	assert.Contains(t, body.Places[0].DistanceLabel, "km away")

	html := serve(router, "GET", "/v1/places/nearby/map", "", map[string]string{"X-Session-ID": "abc"})
	assert.Contains(t, html.Body.String(), "Kiyomizu-dera")
}

func TestRouter_PlacesRateLimited(t *testing.T) {
	router := newTestRouter(t, 1)

	first := serve(router, "GET", "/v1/places/nearby?category=tourism.sights&denied=true&session=r1", "", nil)
	second := serve(router, "GET", "/v1/places/nearby?category=tourism.sights&denied=true&session=r2", "", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestRouter_SessionlessClientsShareNothing(t *testing.T) {
	router := newTestRouter(t, 100)
	clientA := map[string]string{"X-Forwarded-For": "10.0.0.1"}
	clientB := map[string]string{"X-Forwarded-For": "10.0.0.2"}

	lookup := serve(router, "GET", "/v1/places/nearby?category=tourism.sights&lat=12.9716&lon=77.5946", "", clientA)
	assert.Equal(t, http.StatusBadRequest, lookup.Code)

	last := serve(router, "GET", "/v1/places/nearby/last", "", clientB)
	assert.Equal(t, http.StatusBadRequest, last.Code)
	assert.NotContains(t, last.Body.String(), "12.9716")

	dismiss := serve(router, "POST", "/v1/prompts/location/dismiss", "", clientA)
	assert.Equal(t, http.StatusBadRequest, dismiss.Code)

	state := serve(router, "GET", "/v1/prompts/location?session=b", "", clientB)
	require.Equal(t, http.StatusOK, state.Code)
	assert.Contains(t, state.Body.String(), `"dismissed":false`)
	assert.Contains(t, state.Body.String(), `"should_prompt":true`)
}

func TestRouter_PlacesSessionsAreIsolated(t *testing.T) {
	router := newTestRouter(t, 100)

	ok := serve(router, "GET", "/v1/places/nearby?category=tourism.sights&lat=12.9716&lon=77.5946&session=a", "", nil)
	require.Equal(t, http.StatusOK, ok.Code)

	other := serve(router, "GET", "/v1/places/nearby/last?session=b", "", nil)
	assert.Equal(t, http.StatusNotFound, other.Code)
	assert.NotContains(t, other.Body.String(), "12.9716")

	dismiss := serve(router, "POST", "/v1/prompts/location/dismiss?session=a", "", nil)
	require.Equal(t, http.StatusOK, dismiss.Code)
	state := serve(router, "GET", "/v1/prompts/location?session=b", "", nil)
	assert.Contains(t, state.Body.String(), `"should_prompt":true`)
}

func TestRouter_PromptDismissPersists(t *testing.T) {
	router := newTestRouter(t, 100)

	dismiss := serve(router, "POST", "/v1/prompts/location/dismiss?session=p1", "", nil)
	require.Equal(t, http.StatusOK, dismiss.Code)

	state := serve(router, "GET", "/v1/prompts/location?session=p1", "", nil)
	assert.Contains(t, state.Body.String(), `"dismissed":true`)
	assert.Contains(t, state.Body.String(), `"should_prompt":false`)
}

func TestRouter_AuthFlow(t *testing.T) {
	router := newTestRouter(t, 100)

	reg := serve(router, "POST", "/v1/auth/register", `{"name":"Asha","email":"asha@example.com","password":"pw"}`, nil)
	require.Equal(t, http.StatusCreated, reg.Code, reg.Body.String())
	assert.NotContains(t, reg.Body.String(), "password")

	dup := serve(router, "POST", "/v1/auth/register", `{"name":"A","email":"asha@example.com","password":"pw"}`, nil)
	assert.Equal(t, http.StatusConflict, dup.Code)
	assert.Contains(t, dup.Body.String(), "Email already in use")

	missing := serve(router, "POST", "/v1/auth/register", `{"name":"A","email":"","password":"pw"}`, nil)
	assert.Equal(t, http.StatusBadRequest, missing.Code)

	long := serve(router, "POST", "/v1/auth/register", `{"name":"A","email":"long@example.com","password":"`+strings.Repeat("p", 80)+`"}`, nil)
	assert.Equal(t, http.StatusBadRequest, long.Code)
	assert.Contains(t, long.Body.String(), "at most 72 bytes")

	bad := serve(router, "POST", "/v1/auth/login", `{"email":"asha@example.com","password":"nope"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, bad.Code)

	login := serve(router, "POST", "/v1/auth/login", `{"email":"asha@example.com","password":"pw"}`, nil)
	require.Equal(t, http.StatusOK, login.Code)
	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)

	me := serve(router, "GET", "/v1/auth/me", "", map[string]string{"Authorization": "Bearer " + body.Token})
	assert.Equal(t, http.StatusOK, me.Code)
	assert.Contains(t, me.Body.String(), "asha@example.com")
}
