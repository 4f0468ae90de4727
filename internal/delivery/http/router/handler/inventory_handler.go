package handler

import (
	"log/slog"
	"net/http"

	"dipto/internal/delivery/http/response"
	"dipto/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InventoryHandler holds dependencies for kitchen stock handlers.
type InventoryHandler struct {
	uc     usecase.InventoryUsecase
	logger *slog.Logger
}

// NewInventoryHandler is the constructor for InventoryHandler, injected by Fx.
func NewInventoryHandler(uc usecase.InventoryUsecase, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListInventory returns every stock line.
func (h *InventoryHandler) ListInventory(c echo.Context) error {
	items, err := h.uc.ListInventory(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// Restock fills a stock line back to capacity.
func (h *InventoryHandler) Restock(c echo.Context) error {
	item, err := h.uc.Restock(c.Request().Context(), c.Param("name"), adminActor(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Inventory restocked")
}
