package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultHTTPPort           = 8080
	defaultBlobKey            = "profiles.json"
	defaultSQLitePath         = "data/profilemap.db"
	defaultSlowQueryThreshold = 200 * time.Millisecond
	defaultGeocodingBaseURL   = "https://nominatim.openstreetmap.org"
	defaultGeocodingUserAgent = "profilemap/1.0"
	defaultGeocodingCacheTTL  = 24 * time.Hour
	defaultAdminTokenTTL      = 12 * time.Hour
	defaultMaxViewSessions    = 10000
	defaultViewIdleTTL        = 30 * time.Minute
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// AllowedOrigins lists the browser origins allowed by CORS. Empty allows any origin.
		AllowedOrigins     []string `json:"allowedOrigins" yaml:"allowedOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Persistence selects the profile repository backend
	Persistence PersistenceConfig `json:"persistence" yaml:"persistence"`

	// Postgres is only required when persistence.driver is "postgres"
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Geocoding configures the gateway used to resolve profile locations
	Geocoding GeocodingConfig `json:"geocoding" yaml:"geocoding"`

	// Admin configures validation of admin capability tokens
	Admin AdminConfig `json:"admin" yaml:"admin"`

	// Viewport configures the map viewport policy
	Viewport ViewportConfig `json:"viewport" yaml:"viewport"`

	// Views configures server-held directory view sessions
	Views ViewsConfig `json:"views" yaml:"views"`

	// Seed controls loading of the sample profiles into an empty store
	Seed SeedConfig `json:"seed" yaml:"seed"`

	// PubSub configuration for profile change events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for profile share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Metrics configuration for the Prometheus endpoint
	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PersistenceConfig defines where profiles are stored
type PersistenceConfig struct {
	// Driver is one of "memory", "postgres", "sqlite", "blob"
	Driver string `json:"driver" yaml:"driver"`

	// SQLitePath is the database file for the sqlite driver
	SQLitePath string `json:"sqlitePath" yaml:"sqlitePath"`

	// BlobURL is a gocloud.dev bucket URL (file:///..., mem://, s3://..., gs://...)
	BlobURL string `json:"blobUrl" yaml:"blobUrl"`

	// BlobKey is the object key holding the profile snapshot
	BlobKey string `json:"blobKey" yaml:"blobKey"`

	// SlowQueryThreshold is the postgres query duration logged as a warning. Zero disables it.
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// GeocodingConfig defines the geocoding gateway
type GeocodingConfig struct {
	// Provider is "nominatim" or "static"
	Provider string `json:"provider" yaml:"provider"`

	// BaseURL of the Nominatim-compatible search API
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// UserAgent sent with every request, required by the Nominatim usage policy
	UserAgent string `json:"userAgent" yaml:"userAgent"`

	// Email is an optional contact address passed to Nominatim
	Email string `json:"email" yaml:"email"`

	// Timeout for a single lookup; zero means no client-side timeout
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// CacheSize is the number of successful lookups kept in memory; zero disables the cache
	CacheSize int `json:"cacheSize" yaml:"cacheSize"`

	// CacheTTL is how long a cached lookup stays valid
	CacheTTL time.Duration `json:"cacheTtl" yaml:"cacheTtl"`

	// Static maps exact location strings to coordinates for the static provider
	Static []StaticLocation `json:"static" yaml:"static"`
}

// StaticLocation is one entry of the static geocoding table
type StaticLocation struct {
	Location string  `json:"location" yaml:"location"`
	Lat      float64 `json:"lat" yaml:"lat"`
	Lng      float64 `json:"lng" yaml:"lng"`
}

// AdminConfig defines admin capability token settings
type AdminConfig struct {
	TokenSecret string        `json:"tokenSecret" yaml:"tokenSecret"`
	TokenTTL    time.Duration `json:"tokenTtl" yaml:"tokenTtl"`
	Issuer      string        `json:"issuer" yaml:"issuer"`
}

// ViewportConfig defines the map viewport policy
type ViewportConfig struct {
	FlyToZoom     int     `json:"flyToZoom" yaml:"flyToZoom"`
	FallbackZoom  int     `json:"fallbackZoom" yaml:"fallbackZoom"`
	PaddingPx     int     `json:"paddingPx" yaml:"paddingPx"`
	FlyDuration   float64 `json:"flyDuration" yaml:"flyDuration"`
	EaseLinearity float64 `json:"easeLinearity" yaml:"easeLinearity"`
}

// ViewsConfig defines limits for view sessions
type ViewsConfig struct {
	MaxSessions int           `json:"maxSessions" yaml:"maxSessions"`
	IdleTTL     time.Duration `json:"idleTtl" yaml:"idleTtl"`
}

// SeedConfig defines sample data loading
type SeedConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// MetricsConfig defines the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills every setting the service cannot run without.
func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultHTTPPort
	}
	if cfg.Persistence.Driver == "" {
		cfg.Persistence.Driver = "memory"
	}
	if cfg.Persistence.BlobKey == "" {
		cfg.Persistence.BlobKey = defaultBlobKey
	}
	if cfg.Persistence.SlowQueryThreshold == 0 {
		cfg.Persistence.SlowQueryThreshold = defaultSlowQueryThreshold
	}
	if cfg.Persistence.SQLitePath == "" {
		cfg.Persistence.SQLitePath = defaultSQLitePath
	}
	if cfg.Geocoding.Provider == "" {
		cfg.Geocoding.Provider = "nominatim"
	}
	if cfg.Geocoding.BaseURL == "" {
		cfg.Geocoding.BaseURL = defaultGeocodingBaseURL
	}
	if cfg.Geocoding.UserAgent == "" {
		cfg.Geocoding.UserAgent = defaultGeocodingUserAgent
	}
	if cfg.Geocoding.CacheTTL == 0 {
		cfg.Geocoding.CacheTTL = defaultGeocodingCacheTTL
	}
	if cfg.Admin.TokenTTL == 0 {
		cfg.Admin.TokenTTL = defaultAdminTokenTTL
	}
	if cfg.Viewport.FlyToZoom == 0 {
		cfg.Viewport.FlyToZoom = 14
	}
	if cfg.Viewport.FallbackZoom == 0 {
		cfg.Viewport.FallbackZoom = 4
	}
	if cfg.Viewport.PaddingPx == 0 {
		cfg.Viewport.PaddingPx = 50
	}
	if cfg.Viewport.FlyDuration == 0 {
		cfg.Viewport.FlyDuration = 1.5
	}
	if cfg.Viewport.EaseLinearity == 0 {
		cfg.Viewport.EaseLinearity = 0.25
	}
	if cfg.Views.MaxSessions == 0 {
		cfg.Views.MaxSessions = defaultMaxViewSessions
	}
	if cfg.Views.IdleTTL == 0 {
		cfg.Views.IdleTTL = defaultViewIdleTTL
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
