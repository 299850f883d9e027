package geocoding

import (
	"context"

	"profilemap/internal/domain/entity"
	"profilemap/internal/domain/service"
	"profilemap/internal/errors"
)

// staticGeocoder answers from a fixed table keyed by the exact location string
type staticGeocoder struct {
	table map[string]entity.Coordinates
}

// NewStaticGeocoder creates a geocoder that never leaves the process.
func NewStaticGeocoder(table map[string]entity.Coordinates) service.Geocoder {
	copied := make(map[string]entity.Coordinates, len(table))
	for k, v := range table {
		copied[k] = v
	}

	return &staticGeocoder{table: copied}
}

func (g *staticGeocoder) Geocode(ctx context.Context, location string) (entity.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return entity.Coordinates{}, errors.Wrap(service.ErrGatewayUnavailable, err.Error())
	}

	coords, ok := g.table[location]
	if !ok {
		return entity.Coordinates{}, errors.Wrapf(service.ErrLocationNotFound, "%q", location)
	}

	return coords, nil
}
