package handler

import (
	"net/http"

	"storefront/internal/notify"

	"github.com/labstack/echo/v4"
)

// 通知（トースト相当）のHTTP。読み出すと消える。
type NotificationHandler struct {
	feed *notify.Feed
}

// DI
func NewNotificationHandler(feed *notify.Feed) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

type NotificationListResponse struct {
	Items []notify.Notification `json:"items"`
}

func (h *NotificationHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/notifications", h.list)
}

func (h *NotificationHandler) list(c echo.Context) error {
	sid, ok := getSessionIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	return c.JSON(http.StatusOK, NotificationListResponse{
		Items: h.feed.Drain(sid),
	})
}
