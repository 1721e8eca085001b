package maps

import (
	"context"
	"fmt"
	"midpoint-service/internal/domain"
	"midpoint-service/internal/ports"
	"sync"
)

// MockGeocoder serves canned geocode responses keyed by address or place ID.
// Lookups without an entry return an error, like a failed transport call.
type MockGeocoder struct {
	mu        sync.Mutex
	addresses map[string]ports.GeocodeResponse
	placeIDs  map[string]ports.GeocodeResponse
	Calls     []string
}

func NewMockGeocoder() *MockGeocoder {
	return &MockGeocoder{
		addresses: make(map[string]ports.GeocodeResponse),
		placeIDs:  make(map[string]ports.GeocodeResponse),
	}
}

func (m *MockGeocoder) WithAddress(address string, resp ports.GeocodeResponse) *MockGeocoder {
	m.addresses[address] = resp
	return m
}

func (m *MockGeocoder) WithPlaceID(placeID string, resp ports.GeocodeResponse) *MockGeocoder {
	m.placeIDs[placeID] = resp
	return m
}

// Found is shorthand for an OK response with a single result.
func Found(lat, lng float64) ports.GeocodeResponse {
	return ports.GeocodeResponse{
		Status:  ports.StatusOK,
		Results: []domain.Coordinates{{Lat: lat, Lng: lng}},
	}
}

func (m *MockGeocoder) GeocodeAddress(_ context.Context, address string) (ports.GeocodeResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, "address:"+address)

	r, ok := m.addresses[address]
	if !ok {
		return ports.GeocodeResponse{}, fmt.Errorf("missing address %q", address)
	}
	return r, nil
}

func (m *MockGeocoder) GeocodePlaceID(_ context.Context, placeID string) (ports.GeocodeResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, "place_id:"+placeID)

	r, ok := m.placeIDs[placeID]
	if !ok {
		return ports.GeocodeResponse{}, fmt.Errorf("missing place id %q", placeID)
	}
	return r, nil
}

// MockPlacesSearcher serves canned nearby responses keyed by radius.
type MockPlacesSearcher struct {
	mu     sync.Mutex
	byRad  map[int]ports.NearbyResponse
	errs   map[int]error
	Radii  []int
	Center []domain.Coordinates
}

func NewMockPlacesSearcher() *MockPlacesSearcher {
	return &MockPlacesSearcher{
		byRad: make(map[int]ports.NearbyResponse),
		errs:  make(map[int]error),
	}
}

func (m *MockPlacesSearcher) WithRadius(radius int, resp ports.NearbyResponse) *MockPlacesSearcher {
	m.byRad[radius] = resp
	return m
}

func (m *MockPlacesSearcher) WithError(radius int, err error) *MockPlacesSearcher {
	m.errs[radius] = err
	return m
}

func (m *MockPlacesSearcher) SearchNearby(
	_ context.Context,
	center domain.Coordinates,
	_ string,
	radiusMeters int,
) (ports.NearbyResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Radii = append(m.Radii, radiusMeters)
	m.Center = append(m.Center, center)

	if err, ok := m.errs[radiusMeters]; ok {
		return ports.NearbyResponse{}, err
	}
	if r, ok := m.byRad[radiusMeters]; ok {
		return r, nil
	}
	return ports.NearbyResponse{Status: ports.StatusZeroResults}, nil
}

// MockTravelMatrix returns a fixed response (or error) and records requests.
type MockTravelMatrix struct {
	mu           sync.Mutex
	Response     ports.MatrixResponse
	Err          error
	Calls        int
	Destinations [][]domain.Coordinates
}

func (m *MockTravelMatrix) TravelTimes(
	_ context.Context,
	_ []domain.Coordinates,
	destinations []domain.Coordinates,
) (ports.MatrixResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	m.Destinations = append(m.Destinations, destinations)

	if m.Err != nil {
		return ports.MatrixResponse{}, m.Err
	}
	return m.Response, nil
}
