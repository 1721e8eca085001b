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

type matrixResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Rows         []struct {
		Elements []struct {
			Status   string       `json:"status"`
			Duration *googleValue `json:"duration"`
			Distance *googleValue `json:"distance"`
		} `json:"elements"`
	} `json:"rows"`
}

// TravelTimes retrieves driving time and distance for every origin x destination
// pair in one Distance Matrix call. Imperial units are requested so the text
// fields read in miles.
func (g *GoogleClient) TravelTimes(
	ctx context.Context,
	origins []domain.Coordinates,
	destinations []domain.Coordinates,
) (_ ports.MatrixResponse, err error) {
	defer obs.Time(ctx, "maps.TravelTimes")(&err)

	if len(origins) == 0 || len(destinations) == 0 {
		return ports.MatrixResponse{}, errors.New("travel times: origins and destinations must be non-empty")
	}

	originKeys := coordinateKeys(origins)
	destinationKeys := coordinateKeys(destinations)

	// Serve entirely from cache when every cell is present; partial hits still
	// fetch the whole matrix so the request shape stays a single batched call.
	if cached, ok := g.cachedMatrix(ctx, originKeys, destinationKeys); ok {
		return cached, nil
	}

	params := url.Values{}
	params.Set("origins", strings.Join(originKeys, "|"))
	params.Set("destinations", strings.Join(destinationKeys, "|"))
	params.Set("mode", "driving")
	params.Set("units", "imperial")

	var decoded matrixResponse
	if err := g.getJSON(ctx, "/distancematrix/json", params, g.cfg.MatrixTimeout, &decoded); err != nil {
		return ports.MatrixResponse{}, err
	}

	out := ports.MatrixResponse{
		Status:       decoded.Status,
		ErrorMessage: decoded.ErrorMessage,
		Rows:         make([][]ports.MatrixElement, 0, len(decoded.Rows)),
	}
	for _, row := range decoded.Rows {
		elems := make([]ports.MatrixElement, 0, len(row.Elements))
		for _, e := range row.Elements {
			elem := ports.MatrixElement{Status: e.Status}
			if e.Duration != nil {
				elem.DurationText = e.Duration.Text
				elem.DurationSeconds = e.Duration.Value
			}
			if e.Distance != nil {
				elem.DistanceText = e.Distance.Text
				elem.DistanceMeters = e.Distance.Value
			}
			elems = append(elems, elem)
		}
		out.Rows = append(out.Rows, elems)
	}

	if out.Status == ports.StatusOK {
		g.storeMatrix(ctx, originKeys, destinationKeys, out)
	}

	return out, nil
}

func coordinateKeys(coords []domain.Coordinates) []string {
	keys := make([]string, 0, len(coords))
	for _, c := range coords {
		keys = append(keys, c.String())
	}
	return keys
}

func (g *GoogleClient) cachedMatrix(
	ctx context.Context,
	originKeys []string,
	destinationKeys []string,
) (ports.MatrixResponse, bool) {
	if g.travelCache == nil {
		return ports.MatrixResponse{}, false
	}

	rows := make([][]ports.MatrixElement, 0, len(originKeys))
	for _, o := range originKeys {
		hits, err := g.travelCache.GetMany(ctx, o, destinationKeys)
		if err != nil {
			log.Printf("req_id=%s travel cache read failed origin=%q: %v", obs.RequestID(ctx), o, err)
			return ports.MatrixResponse{}, false
		}

		row := make([]ports.MatrixElement, 0, len(destinationKeys))
		for _, d := range destinationKeys {
			elem, ok := hits[d]
			if !ok {
				return ports.MatrixResponse{}, false
			}
			row = append(row, elem)
		}
		rows = append(rows, row)
	}

	return ports.MatrixResponse{Status: ports.StatusOK, Rows: rows}, true
}

// storeMatrix caches the cells that carry usable live data.
func (g *GoogleClient) storeMatrix(
	ctx context.Context,
	originKeys []string,
	destinationKeys []string,
	resp ports.MatrixResponse,
) {
	if g.travelCache == nil {
		return
	}

	for i, o := range originKeys {
		if i >= len(resp.Rows) {
			return
		}

		cells := make(map[string]ports.MatrixElement, len(destinationKeys))
		for j, d := range destinationKeys {
			if j >= len(resp.Rows[i]) {
				break
			}
			elem := resp.Rows[i][j]
			if elem.Status != ports.StatusOK || elem.DurationText == "" {
				continue
			}
			cells[d] = elem
		}

		if len(cells) == 0 {
			continue
		}
		if err := g.travelCache.PutMany(ctx, o, cells); err != nil {
			log.Printf("req_id=%s travel cache write failed origin=%q: %v", obs.RequestID(ctx), o, err)
		}
	}
}
