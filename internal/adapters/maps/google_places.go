package maps

import (
	"context"
	"errors"
	"midpoint-service/internal/domain"
	"midpoint-service/internal/platform/obs"
	"midpoint-service/internal/ports"
	"net/url"
	"strconv"
	"strings"
)

type nearbySearchResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		Name             *string         `json:"name"`
		Rating           *float64        `json:"rating"`
		UserRatingsTotal *int            `json:"user_ratings_total"`
		Vicinity         *string         `json:"vicinity"`
		FormattedAddress *string         `json:"formatted_address"`
		PlaceID          *string         `json:"place_id"`
		Geometry         *googleGeometry `json:"geometry"`
	} `json:"results"`
}

// SearchNearby lists places of placeType within radiusMeters of center
// using the Places Nearby Search API.
func (g *GoogleClient) SearchNearby(
	ctx context.Context,
	center domain.Coordinates,
	placeType string,
	radiusMeters int,
) (_ ports.NearbyResponse, err error) {
	defer obs.Time(ctx, "maps.SearchNearby r="+strconv.Itoa(radiusMeters))(&err)

	placeType = strings.TrimSpace(placeType)
	if placeType == "" {
		return ports.NearbyResponse{}, errors.New("search nearby: place type must be non-empty")
	}
	if radiusMeters <= 0 {
		return ports.NearbyResponse{}, errors.New("search nearby: radius must be positive")
	}

	params := url.Values{}
	params.Set("location", center.String())
	params.Set("radius", strconv.Itoa(radiusMeters))
	params.Set("type", placeType)

	var decoded nearbySearchResponse
	if err := g.getJSON(ctx, "/place/nearbysearch/json", params, g.cfg.SearchTimeout, &decoded); err != nil {
		return ports.NearbyResponse{}, err
	}

	out := ports.NearbyResponse{
		Status:       decoded.Status,
		ErrorMessage: decoded.ErrorMessage,
		Results:      make([]ports.NearbyPlace, 0, len(decoded.Results)),
	}
	for _, r := range decoded.Results {
		p := ports.NearbyPlace{
			Name:             r.Name,
			Rating:           r.Rating,
			UserRatingsTotal: r.UserRatingsTotal,
			Vicinity:         r.Vicinity,
			FormattedAddress: r.FormattedAddress,
			PlaceID:          r.PlaceID,
		}
		if r.Geometry != nil && r.Geometry.Location != nil {
			p.Lat = r.Geometry.Location.Lat
			p.Lng = r.Geometry.Location.Lng
		}
		out.Results = append(out.Results, p)
	}

	return out, nil
}
