package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"midpoint-service/internal/api/dto"
	"midpoint-service/internal/domain"
	"midpoint-service/internal/platform/obs"
	"midpoint-service/internal/services"
	"net/http"
)

const (
	msgUnconfigured = "Server API key not set. Add MAPS_API_KEY to .env"
	msgValidation   = "Please provide address1, address2, and placeType."
	msgGeocode      = "Could not geocode one or both addresses."
)

// MidpointFinder is the pipeline the handler drives.
type MidpointFinder interface {
	Configured() bool
	Find(ctx context.Context, req services.MidpointRequest) (*domain.MidpointResult, error)
}

type MidpointHandler struct {
	Finder MidpointFinder
}

// Find decodes a midpoint request, runs the pipeline and maps its error kinds
// onto the public status codes and messages.
func (h *MidpointHandler) Find(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	// Credential check precedes any body inspection.
	if !h.Finder.Configured() {
		writeError(w, r, http.StatusInternalServerError, msgUnconfigured)
		return
	}

	var req dto.FindMidpointRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()

	// An empty body is treated as an empty request and fails validation below.
	if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	res, err := h.Finder.Find(r.Context(), services.MidpointRequest{
		Address1:  req.Address1,
		Address2:  req.Address2,
		PlaceType: req.PlaceType,
		PlaceID1:  req.PlaceID1,
		PlaceID2:  req.PlaceID2,
	})
	if err != nil {
		writeFindError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewMidpointResponse(res))
}

func writeFindError(w http.ResponseWriter, r *http.Request, err error) {
	var gerr *domain.GeocodeError

	switch {
	case errors.Is(err, domain.ErrUnconfigured):
		writeError(w, r, http.StatusInternalServerError, msgUnconfigured)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, r, http.StatusBadRequest, msgValidation)
	case errors.As(err, &gerr):
		writeJSON(w, r, http.StatusBadRequest, dto.GeocodeErrorResponse{
			Error: msgGeocode,
			Details: map[string]domain.ResolveDiagnostics{
				"a1": gerr.Origin1,
				"a2": gerr.Origin2,
			},
		})
	default:
		log.Printf("req_id=%s find midpoint failed: %v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
