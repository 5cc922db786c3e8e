package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Geoapify places API
const GEOAPIFY_ENDPOINT_BASE_V2 = "https://api.geoapify.com/v2"
const PLACES_DEFAULT_RADIUS_METERS = 5000
const PLACES_LIMIT = 10
const PLACES_RATE_LIMIT_PER_MINUTE = 30
const PLACES_SESSION_IDLE_MINUTES = 30

// Destinations geo index refresh
const DESTINATIONS_INDEX_SCHEDULE_MINUTES = 60

// Auth
const SQLITE_PATH = "data/travel_buddy.db"
const JWT_SECRET = "change-me-in-production"
const JWT_TTL_HOURS = 24

// Server
const HTTP_ADDR = ":8080"

// Comma separated CIDRs or IPs whose X-Forwarded-For header is trusted. Empty trusts no one.
const TRUSTED_PROXIES = ""

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const CATALOG_RESOURCE = "catalog.json"
const PLACES_RESPONSE_RESOURCE = "places_response.json"

// Config holds the runtime configuration. Every field falls back to the
// constants above when its environment variable is unset.
type Config struct {
	Env      string
	HTTPAddr string

	RedisAddress  string
	RedisPassword string
	RedisDB       int

	GeoapifyEndpointBase      string
	GeoapifyAPIKey            string
	PlacesDefaultRadiusMeters int
	PlacesLimit               int
	PlacesRateLimitPerMinute  int
	PlacesSessionIdleTTL      time.Duration
	TrustedProxies            []string

	DestinationsIndexSchedule time.Duration

	SQLitePath string
	JWTSecret  string
	JWTTTL     time.Duration
}

// ErrDefaultSecret is returned by Validate when prod runs with the built-in JWT secret.
var ErrDefaultSecret = errors.New("JWT_SECRET must be set in prod")

// Load reads configuration from environment variables. Durations, counts and
// limits that are not positive fall back to their defaults.
func Load() *Config {
	return &Config{
		Env:      getEnv("APP_ENV", "dev"),
		HTTPAddr: getEnv("HTTP_ADDR", HTTP_ADDR),

		RedisAddress:  getEnv("REDIS_ADDRESS", REDIS_DB_ADDRESS),
		RedisPassword: getEnv("REDIS_PASSWORD", REDIS_DB_PASSWORD),
		RedisDB:       getEnvInt("REDIS_DB", REDIS_DB),

		GeoapifyEndpointBase:      getEnv("GEOAPIFY_ENDPOINT_BASE", GEOAPIFY_ENDPOINT_BASE_V2),
		GeoapifyAPIKey:            os.Getenv("GEOAPIFY_API_KEY"),
		PlacesDefaultRadiusMeters: getEnvPositiveInt("PLACES_DEFAULT_RADIUS_METERS", PLACES_DEFAULT_RADIUS_METERS),
		PlacesLimit:               getEnvPositiveInt("PLACES_LIMIT", PLACES_LIMIT),
		PlacesRateLimitPerMinute:  getEnvPositiveInt("PLACES_RATE_LIMIT", PLACES_RATE_LIMIT_PER_MINUTE),
		PlacesSessionIdleTTL:      time.Duration(getEnvPositiveInt("PLACES_SESSION_IDLE_MINUTES", PLACES_SESSION_IDLE_MINUTES)) * time.Minute,
		TrustedProxies:            getEnvList("TRUSTED_PROXIES", TRUSTED_PROXIES),

		DestinationsIndexSchedule: time.Duration(getEnvPositiveInt("DESTINATIONS_INDEX_SCHEDULE_MINUTES", DESTINATIONS_INDEX_SCHEDULE_MINUTES)) * time.Minute,

		SQLitePath: getEnv("SQLITE_PATH", SQLITE_PATH),
		JWTSecret:  getEnv("JWT_SECRET", JWT_SECRET),
		JWTTTL:     time.Duration(getEnvPositiveInt("JWT_TTL_HOURS", JWT_TTL_HOURS)) * time.Hour,
	}
}

// Validate rejects settings that are unsafe for the current environment.
func (c *Config) Validate() error {
	if c.IsProd() && c.JWTSecret == JWT_SECRET {
		return ErrDefaultSecret
	}
	return nil
}

// IsProd reports whether live external collaborators should be used.
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvPositiveInt(key string, defaultVal int) int {
	if n := getEnvInt(key, defaultVal); n > 0 {
		return n
	}
	return defaultVal
}

func getEnvList(key, defaultVal string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, defaultVal), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
