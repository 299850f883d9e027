package handler

import (
	"log/slog"
	"net/http"

	"profilemap/internal/delivery/api/response"
	deliverycontext "profilemap/internal/delivery/context"
	domainerrors "profilemap/internal/domain/errors"
	"profilemap/internal/domain/service"
	"profilemap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	QRCodeSvc service.QRCodeService
	Logger    *slog.Logger
}

// ProfileHandler serves the profile collection and its admin mutations
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	qrCodeSvc service.QRCodeService
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		qrCodeSvc: params.QRCodeSvc,
		logger:    params.Logger,
	}
}

// ListProfiles handles GET /api/v1/profiles
func (h *ProfileHandler) ListProfiles(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.profileUC.All())
}

// GetProfile handles GET /api/v1/profiles/:id
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, err := h.profileUC.Get(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// ListLocations handles GET /api/v1/locations
func (h *ProfileHandler) ListLocations(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.profileUC.Locations())
}

// GetProfileQR handles GET /api/v1/profiles/:id/qr and returns a PNG
func (h *ProfileHandler) GetProfileQR(c echo.Context) error {
	profile, err := h.profileUC.Get(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.qrCodeSvc.GenerateProfileQR(profile.ID)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Error("Failed to render QR code",
			slog.String("profile_id", profile.ID),
			slog.Any("error", err),
		)

		return response.InternalServerError(c, "QR_CODE_FAILED", "Failed to render QR code")
	}

	c.Response().Header().Set("X-Profile-Link", h.qrCodeSvc.ProfileLink(profile.ID))

	return c.Blob(http.StatusOK, "image/png", png)
}

// CreateProfile handles POST /api/v1/profiles
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	var req usecase.AddProfileInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.profileUC.Add(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, profile)
}

// UpdateProfile handles PATCH /api/v1/profiles/:id
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var req usecase.UpdateProfileInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}
	if req.IsEmpty() {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("no fields to update"))
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.profileUC.Update(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// DeleteProfile handles DELETE /api/v1/profiles/:id. Unknown ids also get 204.
func (h *ProfileHandler) DeleteProfile(c echo.Context) error {
	if err := h.profileUC.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
