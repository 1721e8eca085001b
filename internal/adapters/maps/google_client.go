package maps

import (
	"errors"
	"midpoint-service/internal/ports"
	"net/http"
	"strings"
	"time"
)

const DefaultBaseURL = "https://maps.googleapis.com/maps/api"

// GoogleConfig holds the credential and per-call timeouts for GoogleClient.
type GoogleConfig struct {
	APIKey         string
	BaseURL        string
	GeocodeTimeout time.Duration
	SearchTimeout  time.Duration
	MatrixTimeout  time.Duration
}

// GoogleClient implements Geocoder, PlacesSearcher and TravelMatrix using the
// Google Maps web services (Geocoding, Places Nearby Search, Distance Matrix).
//
// It coordinates:
//   - Address normalization
//   - Optional persistent geocode caching
//   - Optional short-lived travel cell caching
//   - One attempt per call, bounded by a per-call timeout
//
// The client is safe for concurrent use.
type GoogleClient struct {
	session      *http.Client
	cfg          GoogleConfig
	geocodeCache ports.GeocodeCache
	travelCache  ports.TravelCache
}

func NewGoogleClient(
	cfg GoogleConfig,
	geocodeCache ports.GeocodeCache,
	travelCache ports.TravelCache,
) (*GoogleClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("google maps api key is empty")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.GeocodeTimeout <= 0 {
		cfg.GeocodeTimeout = 15 * time.Second
	}
	if cfg.SearchTimeout <= 0 {
		cfg.SearchTimeout = 15 * time.Second
	}
	if cfg.MatrixTimeout <= 0 {
		cfg.MatrixTimeout = 30 * time.Second
	}

	client := &GoogleClient{
		// Deadlines come from per-call contexts; see getJSON.
		session:      &http.Client{},
		cfg:          cfg,
		geocodeCache: geocodeCache,
		travelCache:  travelCache,
	}

	return client, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (g *GoogleClient) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

var (
	_ ports.Geocoder       = (*GoogleClient)(nil)
	_ ports.PlacesSearcher = (*GoogleClient)(nil)
	_ ports.TravelMatrix   = (*GoogleClient)(nil)
)
