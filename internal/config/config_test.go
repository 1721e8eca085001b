package config

import (
	"errors"
	"slices"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"MAPS_API_KEY", "Maps_API_KEY", "MAPS_BASE_URL", "PORT", "DATABASE_URL", "REDIS_URL",
		"GEOCODE_CACHE", "TRAVEL_CACHE_TTL", "KAFKA_BROKERS", "KAFKA_TOPIC", "SEARCH_RADII",
		"AVERAGE_SPEED_MPH", "MAX_MATRIX_DESTINATIONS", "GEOCODE_TIMEOUT", "SEARCH_TIMEOUT", "MATRIX_TIMEOUT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Configured() {
		t.Fatalf("expected unconfigured without MAPS_API_KEY")
	}
	if !slices.Equal(cfg.SearchRadii, []int{3000, 5000, 10000, 15000, 25000}) {
		t.Fatalf("radii = %v", cfg.SearchRadii)
	}
	if cfg.AverageSpeedMPH != 35 {
		t.Fatalf("speed = %v, want 35", cfg.AverageSpeedMPH)
	}
	if cfg.MaxMatrixDestinations != 20 {
		t.Fatalf("max destinations = %d, want 20", cfg.MaxMatrixDestinations)
	}
	if cfg.GeocodeTimeout != 15*time.Second || cfg.SearchTimeout != 15*time.Second || cfg.MatrixTimeout != 30*time.Second {
		t.Fatalf("unexpected timeouts: %v %v %v", cfg.GeocodeTimeout, cfg.SearchTimeout, cfg.MatrixTimeout)
	}
	if cfg.GeocodeCache != CacheNone {
		t.Fatalf("cache = %q, want none", cfg.GeocodeCache)
	}
	if cfg.Port != "5000" {
		t.Fatalf("port = %q, want 5000", cfg.Port)
	}
}

func TestLoadLegacyKeyName(t *testing.T) {
	clearEnv(t)
	t.Setenv("Maps_API_KEY", "legacy")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MapsAPIKey != "legacy" || !cfg.Configured() {
		t.Fatalf("expected legacy key to be used, got %q", cfg.MapsAPIKey)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAPS_API_KEY", "k")
	t.Setenv("SEARCH_RADII", "1000, 2000")
	t.Setenv("AVERAGE_SPEED_MPH", "25")
	t.Setenv("MATRIX_TIMEOUT", "45s")
	t.Setenv("MAX_MATRIX_DESTINATIONS", "25")
	t.Setenv("KAFKA_BROKERS", "a:9092, b:9092,")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(cfg.SearchRadii, []int{1000, 2000}) {
		t.Fatalf("radii = %v", cfg.SearchRadii)
	}
	if cfg.AverageSpeedMPH != 25 || cfg.MatrixTimeout != 45*time.Second {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.MaxMatrixDestinations != MaxMatrixDestinationsLimit {
		t.Fatalf("max destinations = %d, want %d", cfg.MaxMatrixDestinations, MaxMatrixDestinationsLimit)
	}
	if !slices.Equal(cfg.KafkaBrokers, []string{"a:9092", "b:9092"}) {
		t.Fatalf("brokers = %v", cfg.KafkaBrokers)
	}
	if cfg.GeocodeCache != CacheRedis {
		t.Fatalf("cache = %q, want redis", cfg.GeocodeCache)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"descending radii", "SEARCH_RADII", "5000,3000"},
		{"non numeric radius", "SEARCH_RADII", "far"},
		{"zero speed", "AVERAGE_SPEED_MPH", "0"},
		{"matrix cap too large", "MAX_MATRIX_DESTINATIONS", "51"},
		{"matrix cap over provider limit", "MAX_MATRIX_DESTINATIONS", "26"},
		{"bad duration", "GEOCODE_TIMEOUT", "soon"},
		{"unknown cache", "GEOCODE_CACHE", "memcached"},
		{"postgres without url", "GEOCODE_CACHE", "postgres"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}
