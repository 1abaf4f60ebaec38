package server

import (
	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/middleware"
	repo "storefront/internal/repository"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// New はechoを組み立てる。全ルートがゲストセッション前提なので
// セッションミドルウェアはルート単位ではなく全体に掛ける。
func New(
	cfg config.Config,
	sessions repo.SessionRepository,
	productH *handler.ProductHandler,
	cartH *handler.CartHandler,
	selectionH *handler.SelectionHandler,
	notificationH *handler.NotificationHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	if cfg.FEURL != "" {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:     []string{cfg.FEURL},
			AllowCredentials: true,
		}))
	}

	e.Use(middleware.GuestSession(cfg, sessions))

	RegisterRoutes(e, productH, cartH, selectionH, notificationH)
	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
