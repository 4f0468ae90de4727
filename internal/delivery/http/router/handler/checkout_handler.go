package handler

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"dipto/internal/delivery/http/response"
	"dipto/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler holds dependencies for the payment simulation handlers.
type CheckoutHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		uc:     uc,
		logger: logger,
	}
}

// checkoutView shapes the session state for JSON; the QR image travels
// base64-encoded.
type checkoutView struct {
	Phase     usecase.CheckoutPhase `json:"phase"`
	Reference string                `json:"reference,omitempty"`
	QRCode    string                `json:"qr_code,omitempty"` // Base64 PNG.
	Quote     usecase.Quote         `json:"quote"`
}

// Status reports the checkout session state for polling clients.
func (h *CheckoutHandler) Status(c echo.Context) error {
	state, err := h.uc.Status(c.Request().Context(), cartKey(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCheckoutView(state), "")
}

// Submit starts the simulated payment for the cart.
func (h *CheckoutHandler) Submit(c echo.Context) error {
	state, err := h.uc.Submit(c.Request().Context(), cartKey(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, toCheckoutView(state), "Payment processing")
}

func toCheckoutView(state *usecase.CheckoutState) *checkoutView {
	view := &checkoutView{
		Phase:     state.Phase,
		Reference: state.Reference,
		Quote:     state.Quote,
	}
	if len(state.QRCodePNG) > 0 {
		view.QRCode = base64.StdEncoding.EncodeToString(state.QRCodePNG)
	}

	return view
}
