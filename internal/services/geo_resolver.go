package services

import (
	"context"
	"log"
	"midpoint-service/internal/domain"
	"midpoint-service/internal/platform/obs"
	"midpoint-service/internal/ports"
)

const (
	MethodPlaceID = "place_id"
	MethodAddress = "address"
)

// Resolution is the explicit outcome of resolving one location reference.
// Coordinates is nil when every attempt failed.
type Resolution struct {
	Coordinates *domain.Coordinates
	Method      string
	Diagnostics domain.ResolveDiagnostics
}

func (r Resolution) Found() bool { return r.Coordinates != nil }

type attempt struct {
	coords       *domain.Coordinates
	status       string
	errorMessage string
	exception    string
}

// GeoResolver turns a location reference into coordinates, preferring the
// place identifier and falling back to the free-text address.
type GeoResolver struct {
	geocoder   ports.Geocoder
	configured bool
}

func NewGeoResolver(geocoder ports.Geocoder, configured bool) *GeoResolver {
	return &GeoResolver{geocoder: geocoder, configured: configured}
}

// Resolve tries each method once, in order, and stops at the first usable
// coordinate. Provider failures are recorded in Diagnostics and never returned.
func (g *GeoResolver) Resolve(ctx context.Context, ref domain.LocationReference) Resolution {
	ref = ref.Normalized()

	var res Resolution
	if !g.configured || g.geocoder == nil {
		return res
	}

	if ref.PlaceID != "" {
		a := g.try(ctx, MethodPlaceID, ref.PlaceID)
		res.Diagnostics.PlaceIDStatus = a.status
		res.Diagnostics.PlaceIDErrorMessage = a.errorMessage
		res.Diagnostics.PlaceIDException = a.exception
		if a.coords != nil {
			res.Coordinates = a.coords
			res.Method = MethodPlaceID
			return res
		}

		log.Printf(
			"req_id=%s geocode place_id unusable, falling back to address status=%q exception=%q",
			obs.RequestID(ctx), a.status, a.exception,
		)
	}

	if ref.Address != "" {
		a := g.try(ctx, MethodAddress, ref.Address)
		res.Diagnostics.AddressStatus = a.status
		res.Diagnostics.AddressErrorMessage = a.errorMessage
		res.Diagnostics.AddressException = a.exception
		if a.coords != nil {
			res.Coordinates = a.coords
			res.Method = MethodAddress
		}
	}

	return res
}

func (g *GeoResolver) try(ctx context.Context, method, value string) attempt {
	var (
		resp ports.GeocodeResponse
		err  error
	)
	switch method {
	case MethodPlaceID:
		resp, err = g.geocoder.GeocodePlaceID(ctx, value)
	default:
		resp, err = g.geocoder.GeocodeAddress(ctx, value)
	}
	if err != nil {
		return attempt{exception: err.Error()}
	}

	a := attempt{status: resp.Status, errorMessage: resp.ErrorMessage}
	if resp.Status != ports.StatusOK || len(resp.Results) == 0 {
		return a
	}

	// Both components come from the same result of the same attempt.
	first := resp.Results[0]
	if !first.Valid() {
		return a
	}
	a.coords = &first

	return a
}
