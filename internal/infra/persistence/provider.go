// Package persistence selects the profile repository backend from configuration.
package persistence

import (
	"context"
	"log/slog"
	"strings"

	"profilemap/config"
	"profilemap/internal/domain/constants"
	"profilemap/internal/domain/lifecycle"
	"profilemap/internal/domain/repository"
	"profilemap/internal/errors"
	"profilemap/internal/infra/persistence/blob"
	"profilemap/internal/infra/persistence/memory"
	"profilemap/internal/infra/persistence/postgres"
	"profilemap/internal/infra/persistence/sqlite"

	"go.uber.org/fx"
)

// RepositoryParams holds dependencies for the ProfileRepository, injected by Fx
type RepositoryParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewProfileRepository opens the backend named by persistence.driver
func NewProfileRepository(params RepositoryParams) (repository.ProfileRepository, error) {
	cfg := params.Config.Persistence
	logger := params.Logger.With(slog.String("driver", cfg.Driver))

	switch strings.ToLower(cfg.Driver) {
	case constants.PersistenceDriverMemory:
		logger.Warn("Using in-memory profile repository, profiles will not survive a restart")

		return memory.NewProfileRepository(), nil

	case constants.PersistenceDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("Using PostgreSQL profile repository")

		return postgres.NewProfileRepository(db), nil

	case constants.PersistenceDriverSQLite:
		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		repo, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return repo.Close()
			},
		})
		logger.Info("Using SQLite profile repository", slog.String("path", cfg.SQLitePath))

		return repo, nil

	case constants.PersistenceDriverBlob:
		if cfg.BlobURL == "" {
			return nil, errors.New("blobUrl is required for the blob driver")
		}

		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		repo, err := blob.Open(ctx, cfg.BlobURL, cfg.BlobKey, params.Logger)
		if err != nil {
			return nil, err
		}
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return repo.Close()
			},
		})
		logger.Info("Using blob profile repository",
			slog.String("bucket", cfg.BlobURL),
			slog.String("key", cfg.BlobKey),
		)

		return repo, nil

	default:
		return nil, errors.Errorf("unknown persistence driver: %s", cfg.Driver)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewProfileRepository),
)
