package services

import (
	"context"
	"log"
	"midpoint-service/internal/domain"
	"midpoint-service/internal/platform/obs"
	"midpoint-service/internal/ports"
	"strings"
	"time"

	"github.com/google/uuid"
)

type MidpointRequest struct {
	Address1  string
	Address2  string
	PlaceType string
	PlaceID1  string
	PlaceID2  string
}

// Tunables for the pipeline. Zero values fall back to the package defaults.
type Settings struct {
	Configured            bool
	SearchRadii           []int
	AverageSpeedMPH       float64
	MaxMatrixDestinations int
}

type Providers struct {
	Geocoder ports.Geocoder
	Places   ports.PlacesSearcher
	Matrix   ports.TravelMatrix
	// Recorder is optional.
	Recorder ports.SearchRecorder
}

// MidpointService runs geocode -> midpoint -> nearby search -> travel
// annotation for one request. Requests share no mutable state.
type MidpointService struct {
	configured bool
	resolver   *GeoResolver
	search     *ProximitySearch
	annotator  *TravelAnnotator
	recorder   ports.SearchRecorder
	now        func() time.Time
}

func NewMidpointService(settings Settings, p Providers) *MidpointService {
	annotator := NewTravelAnnotator(
		p.Matrix,
		NewDistanceEstimator(settings.AverageSpeedMPH),
		settings.MaxMatrixDestinations,
		settings.Configured,
	)

	return &MidpointService{
		configured: settings.Configured,
		resolver:   NewGeoResolver(p.Geocoder, settings.Configured),
		search:     NewProximitySearch(p.Places, settings.SearchRadii, settings.Configured),
		annotator:  annotator,
		recorder:   p.Recorder,
		now:        time.Now,
	}
}

// Configured reports whether a provider credential is present.
func (s *MidpointService) Configured() bool { return s.configured }

// Find returns ErrUnconfigured, ErrValidation or *domain.GeocodeError for
// caller-visible failures. Provider trouble after geocoding only degrades
// the result (fewer places, estimated travel figures).
func (s *MidpointService) Find(ctx context.Context, req MidpointRequest) (_ *domain.MidpointResult, err error) {
	defer obs.Time(ctx, "find_midpoint")(&err)

	if !s.configured {
		return nil, domain.ErrUnconfigured
	}

	address1 := strings.TrimSpace(req.Address1)
	address2 := strings.TrimSpace(req.Address2)
	placeType := strings.TrimSpace(req.PlaceType)
	if address1 == "" || address2 == "" || placeType == "" {
		return nil, domain.ErrValidation
	}

	r1 := s.resolver.Resolve(ctx, domain.LocationReference{Address: address1, PlaceID: req.PlaceID1})
	r2 := s.resolver.Resolve(ctx, domain.LocationReference{Address: address2, PlaceID: req.PlaceID2})
	if !r1.Found() || !r2.Found() {
		return nil, &domain.GeocodeError{
			Origin1: r1.Diagnostics,
			Origin2: r2.Diagnostics,
			Failed1: !r1.Found(),
			Failed2: !r2.Found(),
		}
	}

	origin1 := domain.Origin{Coordinates: *r1.Coordinates, Address: address1}
	origin2 := domain.Origin{Coordinates: *r2.Coordinates, Address: address2}
	mid := domain.Midpoint(origin1.Coordinates, origin2.Coordinates)

	log.Printf(
		"req_id=%s origins resolved method1=%s method2=%s midpoint=%s",
		obs.RequestID(ctx), r1.Method, r2.Method, mid,
	)

	places := s.search.Search(ctx, mid, placeType)
	stats := s.annotator.Annotate(ctx, places, origin1, origin2)

	result := &domain.MidpointResult{
		Places:   places,
		Origin1:  origin1,
		Origin2:  origin2,
		Midpoint: mid,
	}
	s.record(ctx, req, result, stats)

	return result, nil
}

func (s *MidpointService) record(
	ctx context.Context,
	req MidpointRequest,
	result *domain.MidpointResult,
	stats AnnotationStats,
) {
	if s.recorder == nil {
		return
	}

	event := ports.SearchEvent{
		ID:             uuid.NewString(),
		Address1:       result.Origin1.Address,
		Address2:       result.Origin2.Address,
		PlaceType:      strings.TrimSpace(req.PlaceType),
		MidpointLat:    result.Midpoint.Lat,
		MidpointLng:    result.Midpoint.Lng,
		ResultCount:    len(result.Places),
		LiveCells:      stats.Live,
		EstimatedCells: stats.Estimated,
		CompletedAt:    s.now().UTC(),
	}
	if err := s.recorder.Record(ctx, event); err != nil {
		log.Printf("req_id=%s record search event failed event_id=%s err=%v", obs.RequestID(ctx), event.ID, err)
	}
}
