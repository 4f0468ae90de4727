package handler

import (
	"log/slog"
	"net/http"

	"dipto/internal/delivery/http/response"
	"dipto/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MenuHandler holds dependencies for catalog-related handlers.
type MenuHandler struct {
	uc     usecase.MenuUsecase
	logger *slog.Logger
}

// NewMenuHandler is the constructor for MenuHandler, injected by Fx.
func NewMenuHandler(uc usecase.MenuUsecase, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListMenu returns the storefront catalog, optionally filtered by the
// "q" and "category" query parameters.
func (h *MenuHandler) ListMenu(c echo.Context) error {
	items, err := h.uc.SearchMenu(c.Request().Context(), c.QueryParam("q"), c.QueryParam("category"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// GetItem returns a single menu item.
func (h *MenuHandler) GetItem(c echo.Context) error {
	item, err := h.uc.GetItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "")
}

// ToggleAvailability flips whether a dish can be ordered.
func (h *MenuHandler) ToggleAvailability(c echo.Context) error {
	item, err := h.uc.ToggleAvailability(c.Request().Context(), c.Param("id"), adminActor(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Availability updated")
}
