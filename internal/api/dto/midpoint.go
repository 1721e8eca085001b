package dto

import "midpoint-service/internal/domain"

// FindMidpointRequest is decoded leniently: missing fields are empty strings.
type FindMidpointRequest struct {
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	PlaceType string `json:"placeType"`
	PlaceID1  string `json:"placeId1"`
	PlaceID2  string `json:"placeId2"`
}

type LatLngResponse struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

type OriginResponse struct {
	Lat     float64 `json:"lat" yaml:"lat"`
	Lng     float64 `json:"lng" yaml:"lng"`
	Address string  `json:"address" yaml:"address"`
}

// Absent provider fields encode as null. Travel fields are omitted for
// places the annotator never reached.
type PlaceResponse struct {
	Name             *string         `json:"name" yaml:"name"`
	Rating           *float64        `json:"rating" yaml:"rating"`
	UserRatingsTotal *int            `json:"user_ratings_total" yaml:"user_ratings_total"`
	Address          *string         `json:"address" yaml:"address"`
	PlaceID          *string         `json:"place_id" yaml:"place_id"`
	Location         *LatLngResponse `json:"location" yaml:"location"`
	MapsURL          *string         `json:"maps_url" yaml:"maps_url"`

	TravelTimeFromOrigin1     *string `json:"travel_time_from_origin1_text,omitempty" yaml:"travel_time_from_origin1_text,omitempty"`
	TravelDistanceFromOrigin1 *string `json:"travel_distance_from_origin1_text,omitempty" yaml:"travel_distance_from_origin1_text,omitempty"`
	TravelTimeFromOrigin2     *string `json:"travel_time_from_origin2_text,omitempty" yaml:"travel_time_from_origin2_text,omitempty"`
	TravelDistanceFromOrigin2 *string `json:"travel_distance_from_origin2_text,omitempty" yaml:"travel_distance_from_origin2_text,omitempty"`
}

type MidpointResponse struct {
	Places   []PlaceResponse `json:"places" yaml:"places"`
	Origin1  OriginResponse  `json:"origin1" yaml:"origin1"`
	Origin2  OriginResponse  `json:"origin2" yaml:"origin2"`
	Midpoint LatLngResponse  `json:"midpoint" yaml:"midpoint"`
}

type GeocodeErrorResponse struct {
	Error   string                               `json:"error"`
	Details map[string]domain.ResolveDiagnostics `json:"details"`
}

// NewMidpointResponse maps a pipeline result onto the public response shape.
func NewMidpointResponse(res *domain.MidpointResult) MidpointResponse {
	out := MidpointResponse{
		Places: make([]PlaceResponse, 0, len(res.Places)),
		Origin1: OriginResponse{
			Lat:     res.Origin1.Lat,
			Lng:     res.Origin1.Lng,
			Address: res.Origin1.Address,
		},
		Origin2: OriginResponse{
			Lat:     res.Origin2.Lat,
			Lng:     res.Origin2.Lng,
			Address: res.Origin2.Address,
		},
		Midpoint: LatLngResponse{Lat: res.Midpoint.Lat, Lng: res.Midpoint.Lng},
	}

	for _, p := range res.Places {
		pr := PlaceResponse{
			Name:                      p.Name,
			Rating:                    p.Rating,
			UserRatingsTotal:          p.UserRatingsTotal,
			Address:                   p.Address,
			PlaceID:                   p.PlaceID,
			MapsURL:                   p.MapsURL,
			TravelTimeFromOrigin1:     p.TravelTimeFromOrigin1,
			TravelDistanceFromOrigin1: p.TravelDistanceFromOrigin1,
			TravelTimeFromOrigin2:     p.TravelTimeFromOrigin2,
			TravelDistanceFromOrigin2: p.TravelDistanceFromOrigin2,
		}
		if p.Location != nil {
			pr.Location = &LatLngResponse{Lat: p.Location.Lat, Lng: p.Location.Lng}
		}
		out.Places = append(out.Places, pr)
	}

	return out
}
