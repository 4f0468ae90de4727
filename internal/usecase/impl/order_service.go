package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"dipto/internal/domain/entity"
	domainerrors "dipto/internal/domain/errors"
	"dipto/internal/domain/repository"
	"dipto/internal/usecase"
)

// Dashboard figures not derivable from the in-process queue. Revenue
// carries the pre-launch baseline; customers and rating come from the
// historical books.
const (
	revenueBaseline  = 12340.50
	totalCustomers   = 1284
	storefrontRating = 4.9
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo        repository.OrderRepository
	notificationRepo repository.NotificationRepository
	activityRepo     repository.ActivityRepository
	logger           *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	orderRepo repository.OrderRepository,
	notificationRepo repository.NotificationRepository,
	activityRepo repository.ActivityRepository,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orderRepo:        orderRepo,
		notificationRepo: notificationRepo,
		activityRepo:     activityRepo,
		logger:           logger,
	}
}

// ListOrders returns the queue, optionally filtered by a
// case-insensitive customer name or reference query.
func (srv *orderService) ListOrders(ctx context.Context, query string, status entity.OrderStatus) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" && status == "" {
		return orders, nil
	}

	matched := make([]*entity.Order, 0, len(orders))
	for _, order := range orders {
		if status != "" && order.Status != status {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(order.Customer), needle) &&
			!strings.Contains(strings.ToLower(order.ID), needle) {
			continue
		}
		matched = append(matched, order)
	}

	return matched, nil
}

// GetOrder returns a single order by reference.
func (srv *orderService) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// AdvanceOrder moves an order to the next status in the pipeline.
func (srv *orderService) AdvanceOrder(ctx context.Context, id string, actor string) (*entity.Order, error) {
	order, err := srv.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	next, ok := order.Status.Next()
	if !ok {
		return nil, domainerrors.ErrOrderAlreadyDelivered
	}

	return srv.applyStatus(ctx, order, next, actor)
}

// SetStatus moves an order to an explicit later status.
func (srv *orderService) SetStatus(ctx context.Context, id string, status entity.OrderStatus, actor string) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown status %q", status))
	}

	order, err := srv.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.Status.IsTerminal() {
		return nil, domainerrors.ErrOrderAlreadyDelivered
	}
	if !order.Status.CanTransitionTo(status) {
		return nil, domainerrors.ErrInvalidStatusTransition
	}

	return srv.applyStatus(ctx, order, status, actor)
}

// Stats computes the dashboard summary figures from the live queue.
func (srv *orderService) Stats(ctx context.Context) (*usecase.DashboardStats, error) {
	orders, err := srv.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	stats := &usecase.DashboardStats{
		Revenue:   revenueBaseline,
		Customers: totalCustomers,
		Rating:    storefrontRating,
	}
	for _, order := range orders {
		if order.Status == entity.OrderStatusDelivered {
			stats.Revenue += order.Total
		} else {
			stats.ActiveOrders++
		}
	}

	return stats, nil
}

// applyStatus persists a validated transition and records its side
// effects: an activity entry for every change, a notification when the
// kitchen accepts the order or the delivery completes.
func (srv *orderService) applyStatus(ctx context.Context, order *entity.Order, status entity.OrderStatus, actor string) (*entity.Order, error) {
	updated, err := srv.orderRepo.UpdateStatus(ctx, order.ID, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.logger.Info("Order status changed",
		"orderID", updated.ID,
		"from", order.Status.String(),
		"to", status.String(),
	)

	if err := srv.activityRepo.Append(ctx, &entity.ActivityEntry{
		Action:    fmt.Sprintf("Order %s -> %s", updated.ID, status),
		Actor:     actor,
		Category:  entity.ActivityInfo,
		CreatedAt: time.Now(),
	}); err != nil {
		srv.logger.Warn("Failed to record status change", "error", err)
	}

	switch status {
	case entity.OrderStatusPreparing:
		srv.notify(ctx, "Order Accepted",
			fmt.Sprintf("Order %s for %s is now in preparation.", updated.ID, updated.Customer),
			entity.NotificationOrder)
	case entity.OrderStatusDelivered:
		srv.notify(ctx, "Delivery Completed",
			fmt.Sprintf("Order %s has been successfully delivered to %s.", updated.ID, updated.Customer),
			entity.NotificationDelivery)
	}

	return updated, nil
}

func (srv *orderService) notify(ctx context.Context, title, message string, category entity.NotificationCategory) {
	if err := srv.notificationRepo.Push(ctx, &entity.Notification{
		ID:        uuid.New(),
		Title:     title,
		Message:   message,
		Category:  category,
		CreatedAt: time.Now(),
	}); err != nil {
		srv.logger.Warn("Failed to push notification", "title", title, "error", err)
	}
}
