package seed

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"profilemap/config"
	"profilemap/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfiles(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	profiles, err := Profiles(now)
	require.NoError(t, err)
	require.Len(t, profiles, 4)

	assert.Equal(t, "1", profiles[0].ID)
	assert.Equal(t, "Alisha", profiles[0].Name)
	assert.Equal(t, "Kerela, India", profiles[0].Location)
	assert.Equal(t, entity.Coordinates{Lat: 10.850516, Lng: 76.27108}, profiles[0].Coordinates)
	assert.Contains(t, profiles[0].Intro, "Product designer with 5+ years")
	assert.Equal(t, now, profiles[0].CreatedAt)

	names := make([]string, 0, len(profiles))
	for _, p := range profiles {
		names = append(names, p.Name)
		assert.NotEmpty(t, p.Picture)
		assert.True(t, p.Coordinates.Valid())
	}
	assert.Equal(t, []string{"Alisha", "Michael Chen", "Olivia Rodriguez", "David Kim"}, names)
}

func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "missing name", data: "profiles:\n  - id: a\n    location: x\n"},
		{name: "duplicate id", data: "profiles:\n  - {id: a, name: A, location: x}\n  - {id: a, name: B, location: y}\n"},
		{name: "bad coordinates", data: "profiles:\n  - {id: a, name: A, location: x, lat: 95}\n"},
		{name: "unknown field", data: "profiles:\n  - {id: a, name: A, location: x, age: 3}\n"},
		{name: "not yaml", data: "profiles: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decode([]byte(tt.data), time.Now())
			require.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	disabled, err := Load(Params{Config: &config.Config{}, Logger: logger})
	require.NoError(t, err)
	assert.Nil(t, disabled)

	cfg := &config.Config{}
	cfg.Seed.Enabled = true
	enabled, err := Load(Params{Config: cfg, Logger: logger})
	require.NoError(t, err)
	assert.Len(t, enabled, 4)
}
