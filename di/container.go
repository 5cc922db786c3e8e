package di

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"travel-buddy/api"
	"travel-buddy/api/geoapify"
	"travel-buddy/auth"
	"travel-buddy/booking"
	"travel-buddy/catalog"
	"travel-buddy/config"
	"travel-buddy/dao/redis"
	"travel-buddy/db"
	"travel-buddy/server"
	"travel-buddy/server/handlers"
	"travel-buddy/server/middleware"
	services "travel-buddy/service"
	"travel-buddy/util"
)

// Container holds all application dependencies.
type Container struct {
	Config                     *config.Config
	RedisClient                db.RedisClient
	SQLite                     *sql.DB
	Catalog                    *catalog.Catalog
	PlacesAPI                  geoapify.PlacesAPI
	RedisDestinationDao        *redis.RedisDestinationDAO
	RedisPreferenceDao         *redis.RedisPreferenceDAO
	AuthService                *auth.Service
	CatalogService             *services.CatalogService
	PlacesService              *services.PlacesService
	BookingService             *services.BookingService
	LocationPromptService      *services.LocationPromptService
	DestinationsIndexerService *services.DestinationsIndexerService
	PlacesRateLimiter          *middleware.RateLimiter
	MuxRouter                  *mux.Router
	Router                     *server.Router
	TravelBuddyHttpServer      *server.TravelBuddyHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	log.Printf("initializing container - env: %s", cfg.Env)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var redisClient db.RedisClient
	if cfg.IsProd() {
		geoRedisClient, err := db.NewGeoRedisClient(ctx, goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}))
		if err != nil {
			return nil, err
		}
		redisClient = geoRedisClient
	} else {
		redisClient = db.NewMockRedisClient(ctx)
		log.Printf("Using in-memory redis")
	}

	sqlite, err := db.OpenSQLite(cfg.SQLitePath)
	if err != nil {
		return nil, err
	}

	catalogFile, err := util.ReadCatalogFromJSON(config.GetResourcePath(config.CATALOG_RESOURCE))
	if err != nil {
		return nil, err
	}
	listings, err := catalog.New(*catalogFile)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	var placesAPI geoapify.PlacesAPI
	if cfg.GeoapifyAPIKey == "" {
		placesAPI = geoapify.NewGeoapifyApiClientMock(config.GetResourcePath(config.PLACES_RESPONSE_RESOURCE))
		log.Printf("Using mock places api")
	} else {
		log.Printf("Using geoapify places api at %s", cfg.GeoapifyEndpointBase)
		placesAPI = geoapify.NewGeoapifyApiClient(api.NewHTTPClient(cfg.GeoapifyEndpointBase), cfg.GeoapifyAPIKey)
	}

	redisDestinationDao := redis.NewRedisDestinationDAO(redisClient)
	redisPreferenceDao := redis.NewRedisPreferenceDAO(redisClient)

	authService := auth.NewService(
		auth.NewUserRepository(sqlite),
		auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL),
		auth.DefaultHashCost,
	)
	catalogService := services.NewCatalogService(listings, redisDestinationDao)
	placesService := services.NewPlacesService(placesAPI, cfg.PlacesDefaultRadiusMeters, cfg.PlacesLimit)
	placesService.SetSessionIdleTTL(cfg.PlacesSessionIdleTTL)
	bookingService := services.NewBookingService(booking.NewComposer(booking.DefaultCityCodes))
	locationPromptService := services.NewLocationPromptService(redisPreferenceDao)
	destinationsIndexerService := services.NewDestinationsIndexerService(listings, redisDestinationDao)

	placesRateLimiter := middleware.NewRateLimiter(cfg.PlacesRateLimitPerMinute, time.Minute)
	if err := placesRateLimiter.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		placesRateLimiter.Stop()
		sqlite.Close()
		return nil, fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}

	muxRouter := mux.NewRouter()
	router := server.NewRouter(
		handlers.NewCatalogHandler(catalogService),
		handlers.NewPlacesHandler(placesService),
		handlers.NewBookingHandler(bookingService),
		handlers.NewPromptHandler(locationPromptService),
		handlers.NewAuthHandler(authService),
		placesRateLimiter,
		authService,
		muxRouter,
	)
	travelBuddyHttpServer := server.NewTravelBuddyHttpServer(router, muxRouter, cfg.HTTPAddr)

	return &Container{
		Config:                     cfg,
		RedisClient:                redisClient,
		SQLite:                     sqlite,
		Catalog:                    listings,
		PlacesAPI:                  placesAPI,
		RedisDestinationDao:        redisDestinationDao,
		RedisPreferenceDao:         redisPreferenceDao,
		AuthService:                authService,
		CatalogService:             catalogService,
		PlacesService:              placesService,
		BookingService:             bookingService,
		LocationPromptService:      locationPromptService,
		DestinationsIndexerService: destinationsIndexerService,
		PlacesRateLimiter:          placesRateLimiter,
		MuxRouter:                  muxRouter,
		Router:                     router,
		TravelBuddyHttpServer:      travelBuddyHttpServer,
	}, nil
}

// Close releases the resources opened by NewContainer.
func (c *Container) Close() {
	c.PlacesRateLimiter.Stop()
	if err := c.SQLite.Close(); err != nil {
		log.Printf("failed to close sqlite: %v", err)
	}
}
