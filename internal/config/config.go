package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Cache backends accepted by GEOCODE_CACHE.
const (
	CacheNone     = "none"
	CachePostgres = "postgres"
	CacheRedis    = "redis"
)

var (
	DefaultSearchRadii = []int{3000, 5000, 10000, 15000, 25000}

	ErrInvalidConfig = errors.New("invalid configuration")
)

const (
	DefaultAverageSpeedMPH       = 35.0
	DefaultMaxMatrixDestinations = 20

	// Distance Matrix rejects requests with more than 25 destinations.
	MaxMatrixDestinationsLimit = 25
)

// Config is the process-wide, read-only configuration.
type Config struct {
	// MapsAPIKey is the provider credential. Empty disables every provider call.
	MapsAPIKey  string
	MapsBaseURL string
	Port        string

	DatabaseURL    string
	RedisURL       string
	GeocodeCache   string
	TravelCacheTTL time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	SearchRadii           []int
	AverageSpeedMPH       float64
	MaxMatrixDestinations int

	GeocodeTimeout time.Duration
	SearchTimeout  time.Duration
	MatrixTimeout  time.Duration
}

// Configured reports whether a provider credential is present.
func (c Config) Configured() bool {
	return strings.TrimSpace(c.MapsAPIKey) != ""
}

// LoadEnv reads a .env file when present. Missing files are not an error.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
}

// Get returns the trimmed value of key, or fallback when it is unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load builds a Config from the environment.
func Load() (Config, error) {
	cfg := Config{
		MapsAPIKey:   Get("MAPS_API_KEY", Get("Maps_API_KEY", "")),
		MapsBaseURL:  Get("MAPS_BASE_URL", "https://maps.googleapis.com/maps/api"),
		Port:         Get("PORT", "5000"),
		DatabaseURL:  Get("DATABASE_URL", ""),
		RedisURL:     Get("REDIS_URL", ""),
		GeocodeCache: strings.ToLower(Get("GEOCODE_CACHE", "")),
		KafkaTopic:   Get("KAFKA_TOPIC", "midpoint.search.completed"),
	}

	if brokers := Get("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	if cfg.GeocodeCache == "" {
		switch {
		case cfg.RedisURL != "":
			cfg.GeocodeCache = CacheRedis
		case cfg.DatabaseURL != "":
			cfg.GeocodeCache = CachePostgres
		default:
			cfg.GeocodeCache = CacheNone
		}
	}

	switch cfg.GeocodeCache {
	case CacheNone:
	case CachePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("%w: GEOCODE_CACHE=postgres requires DATABASE_URL", ErrInvalidConfig)
		}
	case CacheRedis:
		if cfg.RedisURL == "" {
			return Config{}, fmt.Errorf("%w: GEOCODE_CACHE=redis requires REDIS_URL", ErrInvalidConfig)
		}
	default:
		return Config{}, fmt.Errorf("%w: unknown GEOCODE_CACHE %q", ErrInvalidConfig, cfg.GeocodeCache)
	}

	var err error
	if cfg.SearchRadii, err = parseRadii(Get("SEARCH_RADII", "")); err != nil {
		return Config{}, err
	}

	cfg.AverageSpeedMPH = DefaultAverageSpeedMPH
	if raw := Get("AVERAGE_SPEED_MPH", ""); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 {
			return Config{}, fmt.Errorf("%w: AVERAGE_SPEED_MPH must be a positive number, got %q", ErrInvalidConfig, raw)
		}
		cfg.AverageSpeedMPH = v
	}

	cfg.MaxMatrixDestinations = DefaultMaxMatrixDestinations
	if raw := Get("MAX_MATRIX_DESTINATIONS", ""); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > MaxMatrixDestinationsLimit {
			return Config{}, fmt.Errorf("%w: MAX_MATRIX_DESTINATIONS must be between 1 and %d, got %q", ErrInvalidConfig, MaxMatrixDestinationsLimit, raw)
		}
		cfg.MaxMatrixDestinations = v
	}

	durations := []struct {
		key      string
		fallback time.Duration
		dst      *time.Duration
	}{
		{"GEOCODE_TIMEOUT", 15 * time.Second, &cfg.GeocodeTimeout},
		{"SEARCH_TIMEOUT", 15 * time.Second, &cfg.SearchTimeout},
		{"MATRIX_TIMEOUT", 30 * time.Second, &cfg.MatrixTimeout},
		{"TRAVEL_CACHE_TTL", 15 * time.Minute, &cfg.TravelCacheTTL},
	}
	for _, d := range durations {
		*d.dst = d.fallback
		raw := Get(d.key, "")
		if raw == "" {
			continue
		}
		v, err := time.ParseDuration(raw)
		if err != nil || v <= 0 {
			return Config{}, fmt.Errorf("%w: %s must be a positive duration, got %q", ErrInvalidConfig, d.key, raw)
		}
		*d.dst = v
	}

	return cfg, nil
}

// parseRadii parses a comma-separated, strictly ascending list of meters.
func parseRadii(raw string) ([]int, error) {
	if raw == "" {
		return append([]int(nil), DefaultSearchRadii...), nil
	}

	parts := strings.Split(raw, ",")
	radii := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("%w: SEARCH_RADII entry %q is not a positive integer", ErrInvalidConfig, p)
		}
		if len(radii) > 0 && v <= radii[len(radii)-1] {
			return nil, fmt.Errorf("%w: SEARCH_RADII must be strictly ascending", ErrInvalidConfig)
		}
		radii = append(radii, v)
	}

	return radii, nil
}
