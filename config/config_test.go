package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
env:
  env: test
  serviceName: profilemap
  log:
    level: debug
http:
  port: 9090
persistence:
  driver: sqlite
geocoding:
  provider: static
  userAgent: from-file
  cacheTtl: 1m
  static:
    - location: "Kerela, India"
      lat: 10.850516
      lng: 76.27108
admin:
  tokenSecret: file-secret
seed:
  enabled: true
`

func TestLoadWithEnv_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(sampleYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("GEOCODING_USERAGENT", "from-env")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env.Env)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "sqlite", cfg.Persistence.Driver)
	assert.Equal(t, "static", cfg.Geocoding.Provider)
	assert.Equal(t, "from-env", cfg.Geocoding.UserAgent)
	assert.Equal(t, time.Minute, cfg.Geocoding.CacheTTL)
	require.Len(t, cfg.Geocoding.Static, 1)
	assert.Equal(t, "Kerela, India", cfg.Geocoding.Static[0].Location)
	assert.InDelta(t, 76.27108, cfg.Geocoding.Static[0].Lng, 1e-9)
	assert.Equal(t, "file-secret", cfg.Admin.TokenSecret)
	assert.True(t, cfg.Seed.Enabled)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultHTTPPort, cfg.HTTP.Port)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "memory", cfg.Persistence.Driver)
	assert.Equal(t, defaultBlobKey, cfg.Persistence.BlobKey)
	assert.Equal(t, defaultSlowQueryThreshold, cfg.Persistence.SlowQueryThreshold)
	assert.Equal(t, "nominatim", cfg.Geocoding.Provider)
	assert.Equal(t, defaultGeocodingBaseURL, cfg.Geocoding.BaseURL)
	assert.Zero(t, cfg.Geocoding.Timeout, "no lookup timeout unless configured")
	assert.Equal(t, 14, cfg.Viewport.FlyToZoom)
	assert.Equal(t, 4, cfg.Viewport.FallbackZoom)
	assert.Equal(t, 50, cfg.Viewport.PaddingPx)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)

	cfg.HTTP.Port = 1234
	cfg.applyDefaults()
	assert.Equal(t, 1234, cfg.HTTP.Port)
}
