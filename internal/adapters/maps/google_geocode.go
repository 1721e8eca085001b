package maps

import (
	"context"
	"errors"
	"log"
	"midpoint-service/internal/domain"
	"midpoint-service/internal/platform/obs"
	"midpoint-service/internal/ports"
	"net/url"
	"strings"
)

type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		Geometry googleGeometry `json:"geometry"`
	} `json:"results"`
}

// GeocodeAddress resolves a free-text address using the Geocoding API.
func (g *GoogleClient) GeocodeAddress(
	ctx context.Context,
	address string,
) (_ ports.GeocodeResponse, err error) {
	defer obs.Time(ctx, "maps.GeocodeAddress")(&err)

	norm := g.normalize(address)
	if norm == "" {
		return ports.GeocodeResponse{}, errors.New("geocode address: address must be non-empty")
	}

	params := url.Values{}
	params.Set("address", norm)

	return g.geocode(ctx, "address:"+strings.ToLower(norm), params)
}

// GeocodePlaceID resolves a place identifier using the Geocoding API.
func (g *GoogleClient) GeocodePlaceID(
	ctx context.Context,
	placeID string,
) (_ ports.GeocodeResponse, err error) {
	defer obs.Time(ctx, "maps.GeocodePlaceID")(&err)

	id := strings.TrimSpace(placeID)
	if id == "" {
		return ports.GeocodeResponse{}, errors.New("geocode place id: place id must be non-empty")
	}

	params := url.Values{}
	params.Set("place_id", id)

	return g.geocode(ctx, "place_id:"+id, params)
}

func (g *GoogleClient) geocode(
	ctx context.Context,
	cacheKey string,
	params url.Values,
) (ports.GeocodeResponse, error) {
	// Check the persistent geocode cache before issuing an external call.
	if g.geocodeCache != nil {
		hits, err := g.geocodeCache.GetMany(ctx, []string{cacheKey})
		if err != nil {
			log.Printf("req_id=%s geocode cache read failed key=%q: %v", obs.RequestID(ctx), cacheKey, err)
		} else if c, ok := hits[cacheKey]; ok {
			return ports.GeocodeResponse{
				Status:  ports.StatusOK,
				Results: []domain.Coordinates{c},
			}, nil
		}
	}

	var decoded geocodeResponse
	if err := g.getJSON(ctx, "/geocode/json", params, g.cfg.GeocodeTimeout, &decoded); err != nil {
		return ports.GeocodeResponse{}, err
	}

	out := ports.GeocodeResponse{
		Status:       decoded.Status,
		ErrorMessage: decoded.ErrorMessage,
		Results:      make([]domain.Coordinates, 0, len(decoded.Results)),
	}
	for _, r := range decoded.Results {
		loc := r.Geometry.Location
		// A result without both components is unusable; never keep half a pair.
		if loc == nil || loc.Lat == nil || loc.Lng == nil {
			continue
		}
		out.Results = append(out.Results, domain.Coordinates{Lat: *loc.Lat, Lng: *loc.Lng})
	}

	if g.geocodeCache != nil && out.Status == ports.StatusOK && len(out.Results) > 0 {
		if err := g.geocodeCache.PutMany(ctx, map[string]domain.Coordinates{cacheKey: out.Results[0]}); err != nil {
			log.Printf("req_id=%s geocode cache write failed key=%q: %v", obs.RequestID(ctx), cacheKey, err)
		}
	}

	return out, nil
}
