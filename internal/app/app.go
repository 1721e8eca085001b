package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"midpoint-service/internal/adapters/cache"
	"midpoint-service/internal/adapters/events"
	"midpoint-service/internal/adapters/maps"
	"midpoint-service/internal/config"
	"midpoint-service/internal/platform/db"
	"midpoint-service/internal/ports"
	"midpoint-service/internal/services"
	"time"

	"github.com/redis/go-redis/v9"
)

// Geocode results are stable; entries in Redis are refreshed monthly.
const redisGeocodeTTL = 30 * 24 * time.Hour

// App holds the wired pipeline and the resources it owns.
// Both the HTTP server and the operator CLI build one from Config.
type App struct {
	Config   config.Config
	Midpoint *services.MidpointService
	DB       *sql.DB

	closers []func() error
}

// New is the composition root. It opens the optional stores (Postgres,
// Redis, Kafka), wires them behind ports and builds the midpoint pipeline.
func New(ctx context.Context, cfg config.Config) (_ *App, err error) {
	a := &App{Config: cfg}
	defer func() {
		if err != nil {
			_ = a.Close()
		}
	}()

	if cfg.DatabaseURL != "" {
		if a.DB, err = db.Open(ctx, cfg.DatabaseURL); err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
		a.closers = append(a.closers, a.DB.Close)

		// Cache tables are created on startup for local runs.
		if err := cache.InitSchema(ctx, a.DB); err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
	}

	var (
		geocodeCache ports.GeocodeCache
		travelCache  ports.TravelCache
	)

	switch cfg.GeocodeCache {
	case config.CachePostgres:
		geocodeCache = cache.NewSQLGeocodeCache(a.DB)
	case config.CacheRedis:
		client, err := openRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
		a.closers = append(a.closers, client.Close)
		geocodeCache = cache.NewRedisGeocodeCache(client, redisGeocodeTTL)
	}

	if a.DB != nil {
		travelCache = cache.NewSQLTravelCache(a.DB, cfg.TravelCacheTTL)
	}

	providers := services.Providers{}
	if cfg.Configured() {
		client, err := maps.NewGoogleClient(maps.GoogleConfig{
			APIKey:         cfg.MapsAPIKey,
			BaseURL:        cfg.MapsBaseURL,
			GeocodeTimeout: cfg.GeocodeTimeout,
			SearchTimeout:  cfg.SearchTimeout,
			MatrixTimeout:  cfg.MatrixTimeout,
		}, geocodeCache, travelCache)
		if err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
		providers.Geocoder = client
		providers.Places = client
		providers.Matrix = client
	} else {
		log.Println("MAPS_API_KEY is not set; /api/find_midpoint will return 500")
	}

	if len(cfg.KafkaBrokers) > 0 {
		recorder, err := events.NewKafkaRecorder(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
		a.closers = append(a.closers, recorder.Close)
		providers.Recorder = recorder
	}

	a.Midpoint = services.NewMidpointService(services.Settings{
		Configured:            cfg.Configured(),
		SearchRadii:           cfg.SearchRadii,
		AverageSpeedMPH:       cfg.AverageSpeedMPH,
		MaxMatrixDestinations: cfg.MaxMatrixDestinations,
	}, providers)

	log.Printf(
		"App ready configured=%t geocode_cache=%s travel_cache=%t events=%t",
		cfg.Configured(), cfg.GeocodeCache, travelCache != nil, providers.Recorder != nil,
	)

	return a, nil
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func openRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("open redis: parse url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("open redis: ping: %w", err)
	}

	return client, nil
}
