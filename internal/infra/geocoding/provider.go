// Package geocoding implements the location gateway used by the profile store.
package geocoding

import (
	"log/slog"
	"strings"
	"time"

	"profilemap/config"
	"profilemap/internal/domain/constants"
	"profilemap/internal/domain/entity"
	"profilemap/internal/domain/service"
	"profilemap/internal/errors"
	"profilemap/internal/infra/metrics"

	"go.uber.org/fx"
)

// GeocoderParams holds dependencies for the Geocoder, injected by Fx
type GeocoderParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// NewGeocoder builds the configured provider, instrumented and optionally cached
func NewGeocoder(params GeocoderParams) (service.Geocoder, error) {
	cfg := params.Config.Geocoding
	logger := params.Logger

	var base service.Geocoder
	switch strings.ToLower(cfg.Provider) {
	case constants.GeocodingProviderNominatim:
		if cfg.BaseURL == "" {
			return nil, errors.New("base URL is required for nominatim provider")
		}
		logger.Info("Using Nominatim geocoder",
			slog.String("base_url", cfg.BaseURL),
			slog.Duration("timeout", cfg.Timeout),
		)
		base = NewNominatimGeocoder(NominatimOptions{
			BaseURL:   cfg.BaseURL,
			UserAgent: cfg.UserAgent,
			Email:     cfg.Email,
			Timeout:   cfg.Timeout,
		}, logger)

	case constants.GeocodingProviderStatic:
		table := make(map[string]entity.Coordinates, len(cfg.Static))
		for _, entry := range cfg.Static {
			coords := entity.Coordinates{Lat: entry.Lat, Lng: entry.Lng}
			if !coords.Valid() {
				return nil, errors.Errorf("static geocoding entry %q has out-of-range coordinates", entry.Location)
			}
			table[entry.Location] = coords
		}
		logger.Info("Using static geocoder", slog.Int("entries", len(table)))
		base = NewStaticGeocoder(table)

	default:
		return nil, errors.Errorf("unknown geocoding provider: %s", cfg.Provider)
	}

	geocoder := NewInstrumentedGeocoder(base, params.Metrics)

	if cfg.CacheSize > 0 {
		ttl := cfg.CacheTTL
		if ttl <= 0 {
			ttl = 24 * time.Hour
		}
		geocoder = NewCachedGeocoder(geocoder, cfg.CacheSize, ttl, func() {
			params.Metrics.ObserveGeocode(metrics.ResultCacheHit, 0)
		})
	}

	return geocoder, nil
}

// Module provides the geocoding FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewGeocoder),
)
