package services

import (
	"context"
	"log"
	"midpoint-service/internal/domain"
	"midpoint-service/internal/platform/obs"
	"midpoint-service/internal/ports"
)

// DefaultMaxMatrixDestinations is the provider's per-request destination cap.
const DefaultMaxMatrixDestinations = 20

// Counts of travel cells filled from live routing vs the estimator.
type AnnotationStats struct {
	Live      int
	Estimated int
}

// TravelAnnotator writes travel time and distance from both origins onto
// places using one batched matrix call.
type TravelAnnotator struct {
	matrix          ports.TravelMatrix
	estimator       DistanceEstimator
	maxDestinations int
	configured      bool
}

func NewTravelAnnotator(
	matrix ports.TravelMatrix,
	estimator DistanceEstimator,
	maxDestinations int,
	configured bool,
) *TravelAnnotator {
	if maxDestinations <= 0 {
		maxDestinations = DefaultMaxMatrixDestinations
	}
	return &TravelAnnotator{
		matrix:          matrix,
		estimator:       estimator,
		maxDestinations: maxDestinations,
		configured:      configured,
	}
}

// Annotate mutates at most the first maxDestinations places. Places past the
// cap keep nil travel fields. Every failure degrades to the estimator.
func (a *TravelAnnotator) Annotate(
	ctx context.Context,
	places []*domain.Place,
	origin1, origin2 domain.Origin,
) AnnotationStats {
	var stats AnnotationStats
	if !a.configured || a.matrix == nil || len(places) == 0 {
		return stats
	}

	batch := places
	if len(batch) > a.maxDestinations {
		batch = batch[:a.maxDestinations]
	}

	// columns[i] is the matrix column for batch[i], or -1 without a location.
	columns := make([]int, len(batch))
	destinations := make([]domain.Coordinates, 0, len(batch))
	for i, p := range batch {
		columns[i] = -1
		if p.Location != nil && p.Location.Valid() {
			columns[i] = len(destinations)
			destinations = append(destinations, *p.Location)
		}
	}
	if len(destinations) == 0 {
		return stats
	}

	origins := []domain.Origin{origin1, origin2}
	resp, err := a.matrix.TravelTimes(
		ctx,
		[]domain.Coordinates{origin1.Coordinates, origin2.Coordinates},
		destinations,
	)
	if err != nil || resp.Status != ports.StatusOK || len(resp.Rows) < len(origins) {
		log.Printf(
			"req_id=%s travel matrix unusable, estimating all places=%d status=%q err=%v",
			obs.RequestID(ctx), len(batch), resp.Status, err,
		)
		for _, p := range batch {
			for o, origin := range origins {
				a.estimate(p, o+1, origin, &stats)
			}
		}
		return stats
	}

	for i, p := range batch {
		for o, origin := range origins {
			if el, ok := cell(resp.Rows[o], columns[i]); ok {
				p.SetTravel(o+1, el.DurationText, el.DistanceText)
				stats.Live++
				continue
			}
			a.estimate(p, o+1, origin, &stats)
		}
	}

	return stats
}

func (a *TravelAnnotator) estimate(p *domain.Place, origin int, from domain.Origin, stats *AnnotationStats) {
	e := a.estimator.Estimate(&from.Coordinates, p.Location)
	p.SetTravel(origin, e.TimeText, e.DistanceText)
	stats.Estimated++
}

func cell(row []ports.MatrixElement, column int) (ports.MatrixElement, bool) {
	if column < 0 || column >= len(row) {
		return ports.MatrixElement{}, false
	}
	el := row[column]
	if el.Status != ports.StatusOK || el.DurationText == "" {
		return ports.MatrixElement{}, false
	}
	return el, true
}
