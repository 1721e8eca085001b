package domain

import (
	"fmt"
	"math"
)

// Immutable geographic coordinates (latitude, longitude) in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Report whether both components are finite and inside the WGS84 ranges.
func (c Coordinates) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// Return coordinates as "lat,lng" for provider query parameters.
func (c Coordinates) String() string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lng)
}

// Midpoint returns the component-wise arithmetic mean of a and b.
func Midpoint(a, b Coordinates) Coordinates {
	return Coordinates{
		Lat: (a.Lat + b.Lat) / 2.0,
		Lng: (a.Lng + b.Lng) / 2.0,
	}
}
