package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "profilemap/internal/delivery/context"
	domainerrors "profilemap/internal/domain/errors"
	"profilemap/internal/domain/service"
	"profilemap/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService `optional:"true"`
	Logger       *slog.Logger
}

// AuthMiddleware gates admin-only routes on a bearer capability token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
// Without a token service every admin request is rejected.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	if params.TokenService == nil {
		params.Logger.Warn("Admin token secret not configured, admin routes are disabled")
	}

	return &AuthMiddleware{tokenSvc: params.TokenService, logger: params.Logger}
}

// RequireAdmin lets the request through only with a valid token carrying admin: true.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.tokenSvc == nil {
			return domainerrors.ErrUnauthorized
		}

		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || strings.TrimSpace(tokenString) == "" {
			return domainerrors.ErrUnauthorized
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
		switch {
		case errors.Is(err, service.ErrNotAdmin):
			return domainerrors.ErrForbidden
		case err != nil:
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected admin token", slog.Any("error", err))

			return domainerrors.ErrUnauthorized
		}

		deliverycontext.SetAdminClaims(c, claims)

		return next(c)
	}
}
