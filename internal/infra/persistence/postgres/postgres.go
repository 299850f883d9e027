package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"profilemap/config"
	"profilemap/internal/domain/lifecycle"
	"profilemap/internal/errors"
	"profilemap/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the PostgreSQL connection. The profiles table is migrated on start,
// before any hook registered later (such as the profile store load) runs.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is required for the postgres driver")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Each repository call is a single statement.
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, params.Config.Env.Debug, params.Config.Persistence.SlowQueryThreshold),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if err := db.WithContext(ctx).AutoMigrate(&model.ProfileModel{}, &model.StoreMetaModel{}); err != nil {
				return errors.Wrap(err, "failed to migrate profile tables")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waits := cur.WaitCount - prev.WaitCount
			waited := cur.WaitDuration - prev.WaitDuration
			prev = cur

			if waits <= 0 {
				continue
			}

			level := slog.LevelDebug
			if waited >= dbPoolWarnDurationThreshold {
				level = slog.LevelWarn
			}
			logger.LogAttrs(ctx, level, "Postgres pool wait",
				slog.Int64("wait_count", waits),
				slog.Duration("wait_duration", waited),
				slog.Duration("avg_wait", waited/time.Duration(waits)),
				slog.Int("open_conns", cur.OpenConnections),
				slog.Int("in_use_conns", cur.InUse),
				slog.Int("idle_conns", cur.Idle),
				slog.Int("max_open_conns", cur.MaxOpenConnections),
			)
		}
	}
}
