package geocoding

import (
	"context"
	"time"

	"profilemap/internal/domain/entity"
	"profilemap/internal/domain/service"
	"profilemap/internal/errors"
	"profilemap/internal/infra/metrics"
)

type instrumentedGeocoder struct {
	next    service.Geocoder
	metrics *metrics.Metrics
}

// NewInstrumentedGeocoder records the outcome and latency of every lookup made through next.
func NewInstrumentedGeocoder(next service.Geocoder, m *metrics.Metrics) service.Geocoder {
	return &instrumentedGeocoder{next: next, metrics: m}
}

func (g *instrumentedGeocoder) Geocode(ctx context.Context, location string) (entity.Coordinates, error) {
	start := time.Now()
	coords, err := g.next.Geocode(ctx, location)
	g.metrics.ObserveGeocode(resultLabel(err), time.Since(start))

	return coords, err
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, service.ErrLocationNotFound):
		return metrics.ResultNotFound
	case errors.Is(err, service.ErrGatewayUnavailable):
		return metrics.ResultUnavailable
	default:
		return metrics.ResultError
	}
}
