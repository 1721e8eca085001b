package ports

import (
	"context"
	"midpoint-service/internal/domain"
)

// Provider status values interpreted by the services.
const (
	StatusOK          = "OK"
	StatusZeroResults = "ZERO_RESULTS"
)

// Outcome of a single geocoding call as reported by the provider.
// Status and ErrorMessage are passed through verbatim for diagnostics.
type GeocodeResponse struct {
	Status       string
	ErrorMessage string
	Results      []domain.Coordinates
}

// Contract for resolving a location reference into coordinates.
type Geocoder interface {
	// Geocode a free-text address.
	GeocodeAddress(ctx context.Context, address string) (GeocodeResponse, error)
	// Geocode a provider-specific place identifier.
	GeocodePlaceID(ctx context.Context, placeID string) (GeocodeResponse, error)
}
