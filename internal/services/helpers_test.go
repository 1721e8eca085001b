package services

import (
	"midpoint-service/internal/domain"
	"midpoint-service/internal/ports"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func deref(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}

func nearby(name string, lat, lng float64) ports.NearbyPlace {
	return ports.NearbyPlace{
		Name:     strPtr(name),
		Vicinity: strPtr(name + " street"),
		PlaceID:  strPtr("pid-" + name),
		Lat:      floatPtr(lat),
		Lng:      floatPtr(lng),
	}
}

func placeAt(name string, loc *domain.Coordinates) *domain.Place {
	return &domain.Place{Name: strPtr(name), Location: loc}
}

func okCell(duration, distance string) ports.MatrixElement {
	return ports.MatrixElement{Status: ports.StatusOK, DurationText: duration, DistanceText: distance}
}
