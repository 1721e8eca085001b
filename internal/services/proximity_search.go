package services

import (
	"context"
	"log"
	"midpoint-service/internal/domain"
	"midpoint-service/internal/platform/obs"
	"midpoint-service/internal/ports"
	"net/url"
	"strings"
)

const mapsURLPrefix = "https://www.google.com/maps/search/?api=1&query_place_id="

// DefaultSearchRadii are tried in order until one yields places.
var DefaultSearchRadii = []int{3000, 5000, 10000, 15000, 25000}

// ProximitySearch finds places of a category around a center point,
// widening the radius until something is found.
type ProximitySearch struct {
	searcher   ports.PlacesSearcher
	radii      []int
	configured bool
}

func NewProximitySearch(searcher ports.PlacesSearcher, radii []int, configured bool) *ProximitySearch {
	if len(radii) == 0 {
		radii = DefaultSearchRadii
	}
	return &ProximitySearch{searcher: searcher, radii: radii, configured: configured}
}

// Search never fails. Provider errors and non-OK statuses count as an empty
// radius; an exhausted radius list yields an empty slice.
func (s *ProximitySearch) Search(ctx context.Context, center domain.Coordinates, category string) []*domain.Place {
	category = strings.TrimSpace(category)
	if !s.configured || s.searcher == nil || category == "" {
		return []*domain.Place{}
	}

	for _, radius := range s.radii {
		resp, err := s.searcher.SearchNearby(ctx, center, category, radius)
		if err != nil {
			log.Printf(
				"req_id=%s nearby search failed radius=%d type=%s err=%v",
				obs.RequestID(ctx), radius, category, err,
			)
			continue
		}
		if resp.Status != ports.StatusOK || len(resp.Results) == 0 {
			continue
		}

		places := make([]*domain.Place, 0, len(resp.Results))
		for _, raw := range resp.Results {
			places = append(places, normalizePlace(raw))
		}
		log.Printf(
			"req_id=%s nearby search radius=%d type=%s places=%d",
			obs.RequestID(ctx), radius, category, len(places),
		)
		return places
	}

	return []*domain.Place{}
}

func normalizePlace(raw ports.NearbyPlace) *domain.Place {
	p := &domain.Place{
		Name:             raw.Name,
		Rating:           raw.Rating,
		UserRatingsTotal: raw.UserRatingsTotal,
		PlaceID:          raw.PlaceID,
	}

	// Vicinity wins unless it is blank.
	if raw.Vicinity != nil && *raw.Vicinity != "" {
		p.Address = raw.Vicinity
	} else {
		p.Address = raw.FormattedAddress
	}

	if raw.Lat != nil && raw.Lng != nil {
		p.Location = &domain.Coordinates{Lat: *raw.Lat, Lng: *raw.Lng}
	}

	if raw.PlaceID != nil && *raw.PlaceID != "" {
		u := mapsURLPrefix + url.QueryEscape(*raw.PlaceID)
		p.MapsURL = &u
	}

	return p
}
