package handler

import (
	"log/slog"
	"net/http"

	"dipto/internal/delivery/http/response"
	"dipto/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart ledger handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

// addItemRequest is the payload for putting a dish into the cart.
type addItemRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}

// updateQuantityRequest is the payload for adjusting an entry.
type updateQuantityRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// GetCart returns the cart with its derived totals.
func (h *CartHandler) GetCart(c echo.Context) error {
	view, err := h.uc.GetCart(c.Request().Context(), cartKey(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// AddItem puts one unit of a dish into the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var input addItemRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.AddItem(c.Request().Context(), cartKey(c), input.ItemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Item added")
}

// UpdateQuantity adjusts an entry's quantity by a signed delta.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var input updateQuantityRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	view, err := h.uc.UpdateQuantity(c.Request().Context(), cartKey(c), c.Param("id"), input.Delta)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Quantity updated")
}

// RemoveItem takes an entry out of the cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	view, err := h.uc.RemoveItem(c.Request().Context(), cartKey(c), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Item removed")
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	view, err := h.uc.ClearCart(c.Request().Context(), cartKey(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Cart cleared")
}
