package server

import (
	"net/http"

	"storefront/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	productH *handler.ProductHandler,
	cartH *handler.CartHandler,
	selectionH *handler.SelectionHandler,
	notificationH *handler.NotificationHandler,
) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	productH.RegisterRoutes(e)
	cartH.RegisterRoutes(e)
	selectionH.RegisterRoutes(e)
	notificationH.RegisterRoutes(e)
}
