package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is returned when a required request field is empty.
	ErrValidation = errors.New("please provide address1, address2, and placeType")
	// ErrUnconfigured is returned when no provider credential is configured.
	ErrUnconfigured = errors.New("maps api key is not configured")
)

// Per-attempt diagnostics collected while resolving one origin.
// They exist for observability and never drive control flow.
type ResolveDiagnostics struct {
	PlaceIDStatus       string `json:"place_id_status,omitempty"`
	PlaceIDErrorMessage string `json:"place_id_error_message,omitempty"`
	PlaceIDException    string `json:"place_id_exception,omitempty"`
	AddressStatus       string `json:"address_status,omitempty"`
	AddressErrorMessage string `json:"address_error_message,omitempty"`
	AddressException    string `json:"address_exception,omitempty"`
}

// GeocodeError reports that one or both origins could not be resolved.
type GeocodeError struct {
	Origin1 ResolveDiagnostics
	Origin2 ResolveDiagnostics
	Failed1 bool
	Failed2 bool
}

func (e *GeocodeError) Error() string {
	switch {
	case e.Failed1 && e.Failed2:
		return "could not geocode either address"
	case e.Failed1:
		return fmt.Sprintf("could not geocode address1 (address_status=%q)", e.Origin1.AddressStatus)
	default:
		return fmt.Sprintf("could not geocode address2 (address_status=%q)", e.Origin2.AddressStatus)
	}
}
