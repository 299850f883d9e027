package main

import (
	"context"
	"log/slog"
	"os"

	"profilemap/config"
	"profilemap/internal/delivery"
	"profilemap/internal/delivery/api"
	apimiddleware "profilemap/internal/delivery/api/middleware"
	"profilemap/internal/delivery/api/router/handler"
	"profilemap/internal/domain/service"
	"profilemap/internal/infra/auth"
	"profilemap/internal/infra/geocoding"
	logs "profilemap/internal/infra/log"
	"profilemap/internal/infra/metrics"
	"profilemap/internal/infra/persistence"
	"profilemap/internal/infra/pubsub"
	"profilemap/internal/infra/qrcode"
	"profilemap/internal/infra/seed"
	"profilemap/internal/usecase"
	"profilemap/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type loadStoreParams struct {
	fx.In
	fx.Lifecycle

	Profiles usecase.ProfileUsecase
	Logger   *slog.Logger
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			loadStore,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			metrics.New,
		),
		seed.Module,
	)
}

func injectRepo() fx.Option {
	return persistence.Module
}

func injectService() fx.Option {
	return fx.Options(
		geocoding.Module,
		pubsub.Module,
		fx.Provide(
			newTokenService,
			qrcode.NewQRCodeService,
		),
	)
}

// newTokenService returns nil when no admin secret is configured; admin routes then reject every request.
func newTokenService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Admin.TokenSecret == "" {
		return nil, nil
	}

	return auth.NewJWTService(cfg)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProfileService,
			impl.NewDirectoryService,
			mutationObserver,
			sessionObserver,
		),
	)
}

func mutationObserver(m *metrics.Metrics) usecase.MutationObserver {
	return m
}

func sessionObserver(m *metrics.Metrics) usecase.SessionObserver {
	return m
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
			apimiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewProfileHandler,
			handler.NewDirectoryHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// loadStore fills the profile store once the repository hooks have run.
func loadStore(params loadStoreParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := params.Profiles.Load(ctx); err != nil {
				params.Logger.Error("Failed to load profile store", slog.Any("error", err))

				return err
			}

			return nil
		},
	})
}

// startServer launches every delivery after all start hooks, the store load included, have run.
func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
