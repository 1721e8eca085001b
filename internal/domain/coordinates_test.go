package domain

import (
	"math"
	"testing"
)

func TestCoordinatesValid(t *testing.T) {
	tests := []struct {
		name string
		c    Coordinates
		want bool
	}{
		{"origin", Coordinates{0, 0}, true},
		{"corners", Coordinates{-90, 180}, true},
		{"lat too high", Coordinates{90.1, 0}, false},
		{"lng too low", Coordinates{0, -180.5}, false},
		{"nan", Coordinates{math.NaN(), 0}, false},
	}

	for _, tt := range tests {
		if got := tt.c.Valid(); got != tt.want {
			t.Fatalf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestMidpoint(t *testing.T) {
	a := Coordinates{Lat: 40, Lng: -74}
	b := Coordinates{Lat: 42, Lng: -70}

	got := Midpoint(a, b)
	if got != (Coordinates{Lat: 41, Lng: -72}) {
		t.Fatalf("unexpected midpoint: %+v", got)
	}
	if Midpoint(b, a) != got {
		t.Fatalf("expected midpoint to be symmetric")
	}
}

func TestCoordinatesString(t *testing.T) {
	if got := (Coordinates{Lat: 1.5, Lng: -2.25}).String(); got != "1.500000,-2.250000" {
		t.Fatalf("unexpected string: %q", got)
	}
}

func TestPlaceSetTravel(t *testing.T) {
	var p Place
	p.SetTravel(2, "~5 min", "~1.0 mi")

	if p.TravelTimeFromOrigin1 != nil || p.TravelDistanceFromOrigin1 != nil {
		t.Fatalf("expected origin1 fields untouched")
	}
	if *p.TravelTimeFromOrigin2 != "~5 min" || *p.TravelDistanceFromOrigin2 != "~1.0 mi" {
		t.Fatalf("unexpected origin2 fields: %q %q", *p.TravelTimeFromOrigin2, *p.TravelDistanceFromOrigin2)
	}
}

func TestGeocodeErrorMessage(t *testing.T) {
	err := &GeocodeError{Failed1: true, Failed2: true}
	if err.Error() != "could not geocode either address" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
