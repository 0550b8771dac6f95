package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"cropbase/pkg/store"
)

type NotifyCtrl struct{ st *store.Store }

func New(st *store.Store) *NotifyCtrl { return &NotifyCtrl{st} }

func (h *NotifyCtrl) List(c echo.Context) error { return c.JSON(http.StatusOK, h.st.Notifications()) }

func (h *NotifyCtrl) MarkRead(c echo.Context) error {
	if err := h.st.MarkNotificationRead(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *NotifyCtrl) MarkAllRead(c echo.Context) error {
	if err := h.st.MarkAllNotificationsRead(); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
