package ports

import (
	"context"
	"midpoint-service/internal/domain"
)

// Travel time and distance for one origin/destination pair.
type MatrixElement struct {
	Status          string
	DurationText    string
	DistanceText    string
	DurationSeconds int
	DistanceMeters  int
}

// Rows are indexed by origin, elements within a row by destination.
type MatrixResponse struct {
	Status       string
	ErrorMessage string
	Rows         [][]MatrixElement
}

// Contract for batched origin x destination travel lookups.
type TravelMatrix interface {
	TravelTimes(ctx context.Context, origins []domain.Coordinates, destinations []domain.Coordinates) (MatrixResponse, error)
}
