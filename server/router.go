package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"travel-buddy/models"
	"travel-buddy/server/handlers"
	"travel-buddy/server/middleware"
)

type Router struct {
	catalogHandler *handlers.CatalogHandler
	placesHandler  *handlers.PlacesHandler
	bookingHandler *handlers.BookingHandler
	promptHandler  *handlers.PromptHandler
	authHandler    *handlers.AuthHandler
	placesLimiter  *middleware.RateLimiter
	authenticator  middleware.Authenticator
	router         *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	catalogHandler *handlers.CatalogHandler,
	placesHandler *handlers.PlacesHandler,
	bookingHandler *handlers.BookingHandler,
	promptHandler *handlers.PromptHandler,
	authHandler *handlers.AuthHandler,
	placesLimiter *middleware.RateLimiter,
	authenticator middleware.Authenticator,
	router *mux.Router) *Router {
	return &Router{
		catalogHandler: catalogHandler,
		placesHandler:  placesHandler,
		bookingHandler: bookingHandler,
		promptHandler:  promptHandler,
		authHandler:    authHandler,
		placesLimiter:  placesLimiter,
		authenticator:  authenticator,
		router:         router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(middleware.Logger)

	r.router.HandleFunc("/ping", handlers.Ping).Methods("GET")

	// Literal destination routes go before {slug}.
	r.router.HandleFunc("/v1/destinations/featured", r.catalogHandler.GetFeatured).Methods("GET")
	// expects ?lat={latitude(float)}&lon={longitude(float)}&radius={meters(float)}
	r.router.HandleFunc("/v1/destinations/nearby", r.catalogHandler.GetNearbyDestinations).Methods("GET")
	r.router.HandleFunc("/v1/destinations/{slug}", r.catalogHandler.GetDestination).Methods("GET")
	r.router.HandleFunc("/v1/locations/{slug}", r.catalogHandler.GetLocation).Methods("GET")

	listings := map[string]models.ListingKind{
		"destinations": models.KindDestination,
		"activities":   models.KindActivity,
		"cuisines":     models.KindCuisine,
		"products":     models.KindProduct,
	}
	for path, kind := range listings {
		// expects ?search=&categories=a,b&locations=a,b&prices=$,$$&sort=&date=YYYY-MM-DD
		r.router.HandleFunc("/v1/"+path, r.catalogHandler.ListListings(kind)).Methods("GET")
		if kind != models.KindDestination {
			r.router.HandleFunc("/v1/"+path+"/{id}", r.catalogHandler.GetListing(kind)).Methods("GET")
		}
	}

	places := r.router.PathPrefix("/v1/places").Subrouter()
	places.Use(r.placesLimiter.Middleware)
	// expects ?category={taxonomy}&lat={float}&lon={float}&radius={meters(int)}&denied={bool}&session={id}
	places.HandleFunc("/nearby", r.placesHandler.GetNearbyPlaces).Methods("GET")
	places.HandleFunc("/nearby/last", r.placesHandler.GetLastPlaces).Methods("GET")
	places.HandleFunc("/nearby/map", r.placesHandler.GetPlacesMap).Methods("GET")

	r.router.HandleFunc("/v1/bookings/cities", r.bookingHandler.GetCities).Methods("GET")
	r.router.HandleFunc("/v1/bookings/flights", r.bookingHandler.PostFlight).Methods("POST")
	r.router.HandleFunc("/v1/bookings/hotels", r.bookingHandler.PostHotel).Methods("POST")

	r.router.HandleFunc("/v1/prompts/location", r.promptHandler.GetState).Methods("GET")
	r.router.HandleFunc("/v1/prompts/location/dismiss", r.promptHandler.Dismiss).Methods("POST")
	r.router.HandleFunc("/v1/prompts/location/accept", r.promptHandler.Accept).Methods("POST")

	r.router.HandleFunc("/v1/auth/register", r.authHandler.Register).Methods("POST")
	r.router.HandleFunc("/v1/auth/login", r.authHandler.Login).Methods("POST")
	r.router.Handle("/v1/auth/me", middleware.RequireAuth(r.authenticator)(http.HandlerFunc(r.authHandler.Me))).Methods("GET")
}
