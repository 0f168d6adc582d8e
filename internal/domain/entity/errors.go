package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrAirportNotFound is returned when a place name has no airport in the directory.
	ErrAirportNotFound = errors.New("airport not found")

	// ErrGeneration is returned when the extraction or narrative generator fails.
	ErrGeneration = errors.New("generation failed")

	// ErrInvalidExtraction is returned when the extraction output cannot be turned
	// into a trip request. It always wraps ErrGeneration as well.
	ErrInvalidExtraction = fmt.Errorf("%w: invalid extraction output", ErrGeneration)

	// ErrProviderNotConfigured is returned by providers that lack a credential.
	ErrProviderNotConfigured = errors.New("provider not configured")

	// ErrNoResults is returned by lookups that completed but matched nothing.
	ErrNoResults = errors.New("no results")
)

// ResolutionError names the place that could not be resolved to an airport
type ResolutionError struct {
	Place string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("no IATA code found for city '%s'", e.Place)
}

func (e *ResolutionError) Unwrap() error {
	return ErrAirportNotFound
}
