package handler

import (
	"log/slog"
	"net/http"

	"dipto/internal/delivery/http/response"
	"dipto/internal/domain/entity"
	"dipto/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for the admin order queue handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// setStatusRequest is the payload for an explicit status move.
type setStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ListOrders returns the queue, filtered by the "q" and "status" query
// parameters.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.uc.ListOrders(c.Request().Context(), c.QueryParam("q"), entity.OrderStatus(c.QueryParam("status")))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// GetOrder returns a single order.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.uc.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// AdvanceOrder moves an order one step along the pipeline.
func (h *OrderHandler) AdvanceOrder(c echo.Context) error {
	order, err := h.uc.AdvanceOrder(c.Request().Context(), c.Param("id"), adminActor(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order advanced")
}

// SetStatus moves an order to an explicit later status.
func (h *OrderHandler) SetStatus(c echo.Context) error {
	var input setStatusRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.SetStatus(c.Request().Context(), c.Param("id"), entity.OrderStatus(input.Status), adminActor(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Status updated")
}
