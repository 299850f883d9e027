package service

import (
	"context"

	"profilemap/internal/domain/entity"
	"profilemap/internal/errors"
)

// Geocoding gateway outcomes other than a match.
var (
	// ErrLocationNotFound means the gateway answered but had no match for the query.
	ErrLocationNotFound = errors.New("geocoder: no match for location")
	// ErrGatewayUnavailable means the gateway could not be reached or answered garbage.
	ErrGatewayUnavailable = errors.New("geocoder: gateway unavailable")
)

// Geocoder resolves a free-text location string to coordinates.
type Geocoder interface {
	// Geocode returns the coordinates for location, or an error wrapping
	// ErrLocationNotFound or ErrGatewayUnavailable.
	Geocode(ctx context.Context, location string) (entity.Coordinates, error)
}
