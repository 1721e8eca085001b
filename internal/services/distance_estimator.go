package services

import (
	"fmt"
	"math"
	"midpoint-service/internal/domain"
)

const (
	// EarthRadiusMiles is the mean Earth radius used by the great-circle estimate.
	EarthRadiusMiles = 3959.0
	// DefaultAverageSpeedMPH approximates urban/suburban driving with traffic.
	DefaultAverageSpeedMPH = 35.0

	DistanceUnavailable = "Distance unavailable"
)

// Rough travel figures rendered for display.
type Estimate struct {
	TimeText     string
	DistanceText string
}

// DistanceEstimator derives a straight-line travel estimate when live routing
// data is missing. It never fails: unusable input yields DistanceUnavailable.
type DistanceEstimator struct {
	SpeedMPH float64
}

func NewDistanceEstimator(speedMPH float64) DistanceEstimator {
	if speedMPH <= 0 || math.IsNaN(speedMPH) || math.IsInf(speedMPH, 0) {
		speedMPH = DefaultAverageSpeedMPH
	}
	return DistanceEstimator{SpeedMPH: speedMPH}
}

// HaversineMiles returns the great-circle distance between a and b in miles.
func HaversineMiles(a, b domain.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := lat2 - lat1
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	// Rounding can push h just outside [0, 1] for antipodal points.
	h = math.Min(1, math.Max(0, h))
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMiles * c
}

// Estimate renders "~N min" / "~Hh Mm" and "~D.D mi" for the leg a -> b.
func (e DistanceEstimator) Estimate(a, b *domain.Coordinates) Estimate {
	if a == nil || b == nil || !a.Valid() || !b.Valid() {
		return Estimate{TimeText: DistanceUnavailable, DistanceText: ""}
	}

	speed := e.SpeedMPH
	if !(speed > 0) || math.IsInf(speed, 0) {
		speed = DefaultAverageSpeedMPH
	}

	miles := HaversineMiles(*a, *b)
	hours := miles / speed
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return Estimate{TimeText: DistanceUnavailable, DistanceText: ""}
	}
	minutes := int(hours * 60)

	return Estimate{
		TimeText:     formatMinutes(minutes),
		DistanceText: fmt.Sprintf("~%.1f mi", miles),
	}
}

func formatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("~%d min", minutes)
	}

	hours := minutes / 60
	rem := minutes % 60
	if rem == 0 {
		return fmt.Sprintf("~%dh", hours)
	}
	return fmt.Sprintf("~%dh %dm", hours, rem)
}
