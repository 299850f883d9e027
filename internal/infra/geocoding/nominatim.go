package geocoding

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"profilemap/internal/domain/entity"
	"profilemap/internal/domain/service"
	"profilemap/internal/errors"
)

// nominatimPlace is the subset of a Nominatim search hit we read.
// Nominatim encodes coordinates as strings.
type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// nominatimGeocoder resolves locations against a Nominatim-compatible search API
type nominatimGeocoder struct {
	baseURL    string
	userAgent  string
	email      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NominatimOptions configures NewNominatimGeocoder
type NominatimOptions struct {
	BaseURL   string
	UserAgent string
	Email     string
	// Timeout of zero leaves requests bounded only by the caller's context.
	Timeout time.Duration
}

// NewNominatimGeocoder creates a geocoder backed by the Nominatim search endpoint
func NewNominatimGeocoder(opts NominatimOptions, logger *slog.Logger) service.Geocoder {
	return &nominatimGeocoder{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		userAgent:  opts.UserAgent,
		email:      opts.Email,
		httpClient: &http.Client{Timeout: opts.Timeout},
		logger:     logger,
	}
}

func (g *nominatimGeocoder) searchURL(location string) string {
	query := url.Values{}
	query.Set("format", "json")
	query.Set("limit", "1")
	query.Set("q", location)
	if g.email != "" {
		query.Set("email", g.email)
	}

	return g.baseURL + "/search?" + query.Encode()
}

// Geocode takes the first search hit as the answer.
func (g *nominatimGeocoder) Geocode(ctx context.Context, location string) (entity.Coordinates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.searchURL(location), nil)
	if err != nil {
		return entity.Coordinates{}, errors.Wrap(service.ErrGatewayUnavailable, err.Error())
	}
	req.Header.Set("Accept", "application/json")
	if g.userAgent != "" {
		req.Header.Set("User-Agent", g.userAgent)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.logger.WarnContext(ctx, "[Nominatim] Request failed",
			slog.String("location", location),
			slog.Any("error", err),
		)

		return entity.Coordinates{}, errors.Wrap(service.ErrGatewayUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)

		return entity.Coordinates{}, errors.Wrapf(service.ErrGatewayUnavailable, "nominatim returned status %d", resp.StatusCode)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return entity.Coordinates{}, errors.Wrapf(service.ErrGatewayUnavailable, "decode nominatim response: %v", err)
	}

	if len(places) == 0 {
		return entity.Coordinates{}, errors.Wrapf(service.ErrLocationNotFound, "%q", location)
	}

	coords, err := places[0].coordinates()
	if err != nil {
		return entity.Coordinates{}, errors.Wrap(service.ErrGatewayUnavailable, err.Error())
	}

	g.logger.DebugContext(ctx, "[Nominatim] Location resolved",
		slog.String("location", location),
		slog.String("display_name", places[0].DisplayName),
		slog.Float64("lat", coords.Lat),
		slog.Float64("lng", coords.Lng),
	)

	return coords, nil
}

func (p nominatimPlace) coordinates() (entity.Coordinates, error) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return entity.Coordinates{}, errors.Wrapf(err, "parse lat %q", p.Lat)
	}
	lng, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return entity.Coordinates{}, errors.Wrapf(err, "parse lon %q", p.Lon)
	}

	coords := entity.Coordinates{Lat: lat, Lng: lng}
	if !coords.Valid() {
		return entity.Coordinates{}, errors.Errorf("coordinates out of range: %v,%v", lat, lng)
	}

	return coords, nil
}
