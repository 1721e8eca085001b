package ports

import (
	"context"
	"time"
)

// Summary of one completed midpoint search.
type SearchEvent struct {
	ID             string    `json:"id"`
	Address1       string    `json:"address1"`
	Address2       string    `json:"address2"`
	PlaceType      string    `json:"place_type"`
	MidpointLat    float64   `json:"midpoint_lat"`
	MidpointLng    float64   `json:"midpoint_lng"`
	ResultCount    int       `json:"result_count"`
	LiveCells      int       `json:"live_cells"`
	EstimatedCells int       `json:"estimated_cells"`
	CompletedAt    time.Time `json:"completed_at"`
}

// Port: a sink for completed search events. Failures never affect the response.
type SearchRecorder interface {
	Record(ctx context.Context, event SearchEvent) error
}
