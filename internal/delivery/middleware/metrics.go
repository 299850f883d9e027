package middleware

import (
	"time"

	"profilemap/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// unmatchedRoute labels requests that hit no registered route.
const unmatchedRoute = "unmatched"

// MetricsMiddleware records request counts and latency per route
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle times the request. Errors are resolved to their final status first,
// so the recorded code is the one the client sees.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = unmatchedRoute
		}
		m.metrics.ObserveHTTP(c.Request().Method, route, c.Response().Status, time.Since(start))

		return nil
	}
}
