package domain

import "strings"

// A caller-supplied reference to one origin.
// PlaceID is preferred when present; Address is the free-text fallback.
type LocationReference struct {
	Address string
	PlaceID string
}

func (r LocationReference) Normalized() LocationReference {
	return LocationReference{
		Address: strings.TrimSpace(r.Address),
		PlaceID: strings.TrimSpace(r.PlaceID),
	}
}

// One of the two resolved locations between which a midpoint is computed.
type Origin struct {
	Coordinates
	Address string
}
