package handler

import (
	"context"
	"net/http"

	"profilemap/internal/delivery/api/response"
	"profilemap/internal/domain/directory"
	"profilemap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DirectoryHandlerParams holds dependencies for DirectoryHandler, injected by Fx.
type DirectoryHandlerParams struct {
	fx.In

	DirectoryUC usecase.DirectoryUsecase
}

// DirectoryHandler serves the derived directory: one-shot queries and view sessions
type DirectoryHandler struct {
	directoryUC usecase.DirectoryUsecase
}

// NewDirectoryHandler is the constructor for DirectoryHandler
func NewDirectoryHandler(params DirectoryHandlerParams) *DirectoryHandler {
	return &DirectoryHandler{directoryUC: params.DirectoryUC}
}

// FilterValueRequest is the body of the per-filter view endpoints.
type FilterValueRequest struct {
	Value string `json:"value" validate:"max=255"`
}

// SelectionRequest is the body of PUT /api/v1/views/:id/selection. A null or
// empty profile_id clears the selection.
type SelectionRequest struct {
	ProfileID *string `json:"profile_id"`
}

// Derive handles GET /api/v1/directory?search=&location=&name=&selected=
func (h *DirectoryHandler) Derive(c echo.Context) error {
	view := h.directoryUC.Derive(usecase.DirectoryQuery{
		Filters: directory.Filters{
			Search:   c.QueryParam("search"),
			Location: c.QueryParam("location"),
			Name:     c.QueryParam("name"),
		},
		SelectedID: c.QueryParam("selected"),
	})

	return response.Success(c, http.StatusOK, view)
}

// OpenView handles POST /api/v1/views
func (h *DirectoryHandler) OpenView(c echo.Context) error {
	view, err := h.directoryUC.OpenView(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, view)
}

// GetView handles GET /api/v1/views/:id
func (h *DirectoryHandler) GetView(c echo.Context) error {
	return h.render(c, func() (*usecase.ViewState, error) {
		return h.directoryUC.GetView(c.Request().Context(), c.Param("id"))
	})
}

// SetSearch handles PUT /api/v1/views/:id/search
func (h *DirectoryHandler) SetSearch(c echo.Context) error {
	return h.setFilter(c, h.directoryUC.SetSearch)
}

// SetLocationFilter handles PUT /api/v1/views/:id/location
func (h *DirectoryHandler) SetLocationFilter(c echo.Context) error {
	return h.setFilter(c, h.directoryUC.SetLocationFilter)
}

// SetNameFilter handles PUT /api/v1/views/:id/name
func (h *DirectoryHandler) SetNameFilter(c echo.Context) error {
	return h.setFilter(c, h.directoryUC.SetNameFilter)
}

// Select handles PUT /api/v1/views/:id/selection
func (h *DirectoryHandler) Select(c echo.Context) error {
	var req SelectionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid selection input")
	}

	profileID := ""
	if req.ProfileID != nil {
		profileID = *req.ProfileID
	}

	return h.render(c, func() (*usecase.ViewState, error) {
		return h.directoryUC.Select(c.Request().Context(), c.Param("id"), profileID)
	})
}

// CloseView handles DELETE /api/v1/views/:id
func (h *DirectoryHandler) CloseView(c echo.Context) error {
	if err := h.directoryUC.CloseView(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

type filterSetter func(ctx context.Context, viewID, text string) (*usecase.ViewState, error)

func (h *DirectoryHandler) setFilter(c echo.Context, set filterSetter) error {
	var req FilterValueRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid filter input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.render(c, func() (*usecase.ViewState, error) {
		return set(c.Request().Context(), c.Param("id"), req.Value)
	})
}

func (h *DirectoryHandler) render(c echo.Context, fn func() (*usecase.ViewState, error)) error {
	view, err := fn()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}
