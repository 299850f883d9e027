package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"geocoding": map[string]any{
			"userAgent": "",
			"cacheTtl":  "",
		},
		"admin": map[string]any{
			"tokenSecret": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "GEOCODING_USERAGENT", want: "geocoding.userAgent"},
		{envKey: "GEOCODING_CACHETTL", want: "geocoding.cacheTtl"},
		{envKey: "GEOCODING_CACHE_TTL", want: "geocoding.cache.ttl"},
		{envKey: "ADMIN_TOKENSECRET", want: "admin.tokenSecret"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
