package ports

import (
	"context"
	"midpoint-service/internal/domain"
)

// Persistent mapping from geocode lookup keys to coordinates.
// Only successful lookups are stored.
type GeocodeCache interface {
	GetMany(ctx context.Context, keys []string) (map[string]domain.Coordinates, error)
	PutMany(ctx context.Context, results map[string]domain.Coordinates) error
}

// Short-lived cache of live travel matrix cells for one origin.
// Destination keys are formatted coordinates.
type TravelCache interface {
	GetMany(ctx context.Context, origin string, destinations []string) (map[string]MatrixElement, error)
	PutMany(ctx context.Context, origin string, results map[string]MatrixElement) error
}
