// Package seed provides the sample profiles loaded into an empty store.
package seed

import (
	_ "embed"
	"log/slog"
	"time"

	"profilemap/config"
	"profilemap/internal/domain/entity"
	"profilemap/internal/errors"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"go.uber.org/fx"
)

//go:embed profiles.yaml
var profilesYAML []byte

type seedFile struct {
	Profiles []seedProfile `mapstructure:"profiles"`
}

type seedProfile struct {
	ID       string  `mapstructure:"id"`
	Name     string  `mapstructure:"name"`
	Picture  string  `mapstructure:"picture"`
	Location string  `mapstructure:"location"`
	Intro    string  `mapstructure:"intro"`
	Lat      float64 `mapstructure:"lat"`
	Lng      float64 `mapstructure:"lng"`
}

// Profiles decodes the embedded sample set, stamping every entry with now.
func Profiles(now time.Time) ([]*entity.Profile, error) {
	return decode(profilesYAML, now)
}

func decode(data []byte, now time.Time) ([]*entity.Profile, error) {
	raw, err := yaml.Parser().Unmarshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "parse seed profiles")
	}

	var file seedFile
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &file,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, errors.Wrap(err, "decode seed profiles")
	}

	profiles := make([]*entity.Profile, 0, len(file.Profiles))
	seen := make(map[string]struct{}, len(file.Profiles))
	for _, sp := range file.Profiles {
		if sp.ID == "" || sp.Name == "" || sp.Location == "" {
			return nil, errors.Errorf("seed profile %q is missing id, name or location", sp.ID)
		}
		if _, dup := seen[sp.ID]; dup {
			return nil, errors.Errorf("seed profile id %q is duplicated", sp.ID)
		}
		seen[sp.ID] = struct{}{}

		coords := entity.Coordinates{Lat: sp.Lat, Lng: sp.Lng}
		if !coords.Valid() {
			return nil, errors.Errorf("seed profile %q has out-of-range coordinates", sp.ID)
		}

		profiles = append(profiles, &entity.Profile{
			ID:          sp.ID,
			Name:        sp.Name,
			Picture:     sp.Picture,
			Location:    sp.Location,
			Intro:       sp.Intro,
			Coordinates: coords,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	return profiles, nil
}

// Params holds dependencies for Load, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Load returns the sample profiles when seeding is enabled, nil otherwise.
func Load(params Params) ([]*entity.Profile, error) {
	if !params.Config.Seed.Enabled {
		return nil, nil
	}

	profiles, err := Profiles(time.Now().UTC())
	if err != nil {
		return nil, err
	}
	params.Logger.Debug("Seed profiles available", slog.Int("count", len(profiles)))

	return profiles, nil
}

// Module provides the seed profiles under the "seed_profiles" name
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(fx.Annotate(Load, fx.ResultTags(`name:"seed_profiles"`))),
)
