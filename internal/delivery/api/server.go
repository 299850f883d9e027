// Package api serves the profilemap HTTP API: the public profile directory,
// the map view sessions and the admin-only profile mutations.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"profilemap/config"
	"profilemap/internal/delivery"
	apimiddleware "profilemap/internal/delivery/api/middleware"
	"profilemap/internal/delivery/api/router"
	"profilemap/internal/delivery/api/validator"
	"profilemap/internal/delivery/middleware"
	"profilemap/internal/domain/lifecycle"
	"profilemap/internal/errors"
	"profilemap/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// exposedHeaders are readable by browser clients on cross-origin responses.
//
//nolint:gochecknoglobals
var exposedHeaders = []string{echo.HeaderXRequestID, "X-Profile-Link"}

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the profilemap API server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc              fx.Lifecycle
	Cfg             *config.Config
	Logger          *slog.Logger
	Metrics         *metrics.Metrics `optional:"true"`
	ErrorMiddleware *apimiddleware.ErrorMiddleware
	RouterParams    router.RouterParams
}

// NewServer builds the API and registers its graceful shutdown.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: newEcho(params),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// newEcho assembles the middleware chain and routes. The request id must be set
// before anything logs, and metrics wrap the logger to record the final status.
func newEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	if params.Metrics != nil {
		e.Use(middleware.NewMetricsMiddleware(params.Metrics).Handle)
	}
	e.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)
	e.Use(echomiddleware.CORSWithConfig(corsConfig(params.Cfg)))
	if limit := params.Cfg.HTTP.MaxRequestBodySize; limit != "" {
		e.Use(echomiddleware.BodyLimit(limit))
	}

	e.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError
	e.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return e
}

func corsConfig(cfg *config.Config) echomiddleware.CORSConfig {
	corsCfg := echomiddleware.DefaultCORSConfig
	if len(cfg.HTTP.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.AllowedOrigins
	}
	corsCfg.AllowHeaders = []string{echo.HeaderContentType, echo.HeaderAuthorization, echo.HeaderXRequestID}
	corsCfg.ExposeHeaders = exposedHeaders

	return corsCfg
}

// Serve listens with h2c so clients may use HTTP/2 without TLS.
func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.InfoContext(ctx, "Serving profilemap API", slog.String("host_port", hostPort))

	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "serve profilemap API")
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down profilemap API, draining open requests")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
