package geocoding

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"profilemap/internal/domain/entity"
	"profilemap/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNominatimGeocoder_Geocode(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantCoords entity.Coordinates
		wantErr    error
	}{
		{
			name:       "first hit wins",
			status:     http.StatusOK,
			body:       `[{"lat":"10.850516","lon":"76.271080","display_name":"Kerala"},{"lat":"1","lon":"2"}]`,
			wantCoords: entity.Coordinates{Lat: 10.850516, Lng: 76.27108},
		},
		{
			name:    "empty result is not found",
			status:  http.StatusOK,
			body:    `[]`,
			wantErr: service.ErrLocationNotFound,
		},
		{
			name:    "server error is unavailable",
			status:  http.StatusBadGateway,
			body:    `oops`,
			wantErr: service.ErrGatewayUnavailable,
		},
		{
			name:    "malformed body is unavailable",
			status:  http.StatusOK,
			body:    `{not json`,
			wantErr: service.ErrGatewayUnavailable,
		},
		{
			name:    "unparseable coordinate is unavailable",
			status:  http.StatusOK,
			body:    `[{"lat":"north","lon":"1"}]`,
			wantErr: service.ErrGatewayUnavailable,
		},
		{
			name:    "out of range coordinate is unavailable",
			status:  http.StatusOK,
			body:    `[{"lat":"91","lon":"1"}]`,
			wantErr: service.ErrGatewayUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			g := NewNominatimGeocoder(NominatimOptions{BaseURL: server.URL}, discardLogger())
			coords, err := g.Geocode(context.Background(), "Kerela, India")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCoords, coords)
		})
	}
}

func TestNominatimGeocoder_Request(t *testing.T) {
	var got *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		_, _ = w.Write([]byte(`[{"lat":"41.8781","lon":"-87.6298"}]`))
	}))
	defer server.Close()

	g := NewNominatimGeocoder(NominatimOptions{
		BaseURL:   server.URL + "/",
		UserAgent: "profilemap-test",
		Email:     "ops@example.com",
	}, discardLogger())

	_, err := g.Geocode(context.Background(), "Chicago, USA")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "/search", got.URL.Path)
	assert.Equal(t, "json", got.URL.Query().Get("format"))
	assert.Equal(t, "1", got.URL.Query().Get("limit"))
	assert.Equal(t, "Chicago, USA", got.URL.Query().Get("q"))
	assert.Equal(t, "ops@example.com", got.URL.Query().Get("email"))
	assert.Equal(t, "profilemap-test", got.Header.Get("User-Agent"))
}

func TestNominatimGeocoder_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	g := NewNominatimGeocoder(NominatimOptions{BaseURL: url}, discardLogger())
	_, err := g.Geocode(context.Background(), "anywhere")

	require.ErrorIs(t, err, service.ErrGatewayUnavailable)
}

func TestNominatimGeocoder_CanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := NewNominatimGeocoder(NominatimOptions{BaseURL: server.URL}, discardLogger())
	_, err := g.Geocode(ctx, "anywhere")

	require.ErrorIs(t, err, service.ErrGatewayUnavailable)
}
