package ports

import (
	"context"
	"midpoint-service/internal/domain"
)

// A raw nearby-search record. Nil fields were absent in the provider payload.
type NearbyPlace struct {
	Name             *string
	Rating           *float64
	UserRatingsTotal *int
	Vicinity         *string
	FormattedAddress *string
	PlaceID          *string
	Lat              *float64
	Lng              *float64
}

type NearbyResponse struct {
	Status       string
	ErrorMessage string
	Results      []NearbyPlace
}

// Contract for querying places of a category within a radius of a coordinate.
type PlacesSearcher interface {
	SearchNearby(ctx context.Context, center domain.Coordinates, placeType string, radiusMeters int) (NearbyResponse, error)
}
