package handler

import (
	"log/slog"
	"net/http"

	"dipto/internal/delivery/http/response"
	"dipto/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler holds dependencies for the admin dashboard handlers.
type DashboardHandler struct {
	orders   usecase.OrderUsecase
	activity usecase.ActivityUsecase
	logger   *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(
	orders usecase.OrderUsecase,
	activity usecase.ActivityUsecase,
	logger *slog.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		orders:   orders,
		activity: activity,
		logger:   logger,
	}
}

// Stats returns the dashboard summary cards.
func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.orders.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// ListActivity returns the admin activity log.
func (h *DashboardHandler) ListActivity(c echo.Context) error {
	views, err := h.activity.ListActivity(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "")
}
