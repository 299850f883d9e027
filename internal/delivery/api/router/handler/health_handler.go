package handler

import (
	"net/http"

	"profilemap/internal/delivery/api/response"
	"profilemap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
}

// HealthHandler reports liveness together with the store revision.
type HealthHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{profileUC: params.ProfileUC}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Revision uint64 `json:"revision"`
	Profiles int    `json:"profiles"`
}

// Check handles GET /health
func (h *HealthHandler) Check(c echo.Context) error {
	snap := h.profileUC.Snapshot()

	return response.Success(c, http.StatusOK, HealthResponse{
		Status:   "ok",
		Revision: snap.Revision,
		Profiles: len(snap.Profiles),
	})
}
