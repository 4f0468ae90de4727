package handler

import (
	"github.com/labstack/echo/v4"
)

// defaultAdminActor labels dashboard actions in the activity log when
// the client does not supply a display name.
const defaultAdminActor = "Admin Dipto"

// HeaderActorName lets the dashboard attribute actions to the signed-in
// administrator's display name.
const HeaderActorName = "X-Actor-Name"

// adminActor resolves the display name used in activity log entries.
func adminActor(c echo.Context) string {
	if name := c.Request().Header.Get(HeaderActorName); name != "" {
		return name
	}

	return defaultAdminActor
}
