package domain

// Represents a single point of interest found near the midpoint.
// Nil fields were absent from the provider record and are never synthesized.
// Travel fields stay nil until the travel annotation step writes them.
type Place struct {
	Name             *string
	Rating           *float64
	UserRatingsTotal *int
	Address          *string
	PlaceID          *string
	Location         *Coordinates
	MapsURL          *string

	TravelTimeFromOrigin1     *string
	TravelDistanceFromOrigin1 *string
	TravelTimeFromOrigin2     *string
	TravelDistanceFromOrigin2 *string
}

// Write travel text for the given origin (1 or 2).
func (p *Place) SetTravel(origin int, timeText, distanceText string) {
	switch origin {
	case 1:
		p.TravelTimeFromOrigin1 = &timeText
		p.TravelDistanceFromOrigin1 = &distanceText
	case 2:
		p.TravelTimeFromOrigin2 = &timeText
		p.TravelDistanceFromOrigin2 = &distanceText
	}
}

// The terminal output of one midpoint search.
type MidpointResult struct {
	Places   []*Place
	Origin1  Origin
	Origin2  Origin
	Midpoint Coordinates
}
