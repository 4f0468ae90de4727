// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dipto/internal/delivery/http/middleware"
	"dipto/internal/delivery/http/router/handler"
	"dipto/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MenuHandler         *handler.MenuHandler
	CartHandler         *handler.CartHandler
	CheckoutHandler     *handler.CheckoutHandler
	OrderHandler        *handler.OrderHandler
	InventoryHandler    *handler.InventoryHandler
	NotificationHandler *handler.NotificationHandler
	DashboardHandler    *handler.DashboardHandler
	AuthHandler         *handler.AuthHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", p.AuthHandler.Register)
		authGroup.POST("/login", p.AuthHandler.Login)
	}

	// Profile updates require a signed-in account
	profileGroup := e.Group("/auth/profile")
	profileGroup.Use(p.AuthMiddleware.Authenticate)
	{
		profileGroup.PUT("", p.AuthHandler.UpdateProfile)
	}

	// Storefront routes are open; the cart is keyed by X-Cart-Key
	e.GET("/menu", p.MenuHandler.ListMenu)
	e.GET("/menu/:id", p.MenuHandler.GetItem)

	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", p.CartHandler.GetCart)
		cartGroup.DELETE("", p.CartHandler.ClearCart)
		cartGroup.POST("/items", p.CartHandler.AddItem)
		cartGroup.PATCH("/items/:id", p.CartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:id", p.CartHandler.RemoveItem)
	}

	e.GET("/checkout/status", p.CheckoutHandler.Status)
	e.POST("/checkout", p.CheckoutHandler.Submit)

	// Dashboard routes require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(p.AuthMiddleware.Authenticate)
	adminGroup.Use(p.AuthMiddleware.RequireRole(entity.RoleAdmin.String()))
	{
		adminGroup.GET("/dashboard", p.DashboardHandler.Stats)
		adminGroup.GET("/activity", p.DashboardHandler.ListActivity)

		adminGroup.GET("/orders", p.OrderHandler.ListOrders)
		adminGroup.GET("/orders/:id", p.OrderHandler.GetOrder)
		adminGroup.POST("/orders/:id/advance", p.OrderHandler.AdvanceOrder)
		adminGroup.POST("/orders/:id/status", p.OrderHandler.SetStatus)

		adminGroup.GET("/inventory", p.InventoryHandler.ListInventory)
		adminGroup.POST("/inventory/:name/restock", p.InventoryHandler.Restock)

		adminGroup.GET("/notifications", p.NotificationHandler.ListNotifications)
		adminGroup.GET("/notifications/unread-count", p.NotificationHandler.UnreadCount)
		adminGroup.POST("/notifications/read-all", p.NotificationHandler.MarkAllRead)

		adminGroup.POST("/menu/:id/availability", p.MenuHandler.ToggleAvailability)
	}
}
