package handler

import (
	"github.com/labstack/echo/v4"

	"dipto/internal/delivery/http/middleware"
)

// HeaderCartKey identifies the cart session. The storefront generates a
// key per browser session and sends it on every cart and checkout call.
const HeaderCartKey = "X-Cart-Key"

// defaultCartKey backs clients that never set the header; they all
// share one anonymous cart, which is fine for local development.
const defaultCartKey = "anonymous"

// cartKey resolves the cart session key for a request. Signed-in
// clients get a cart keyed by their subject; guests fall back to the
// session header.
func cartKey(c echo.Context) string {
	if uid, ok := c.Get(middleware.ContextKeyUID).(string); ok && uid != "" {
		return uid
	}
	if key := c.Request().Header.Get(HeaderCartKey); key != "" {
		return key
	}

	return defaultCartKey
}
