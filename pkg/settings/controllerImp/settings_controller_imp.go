package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cropbase/pkg/store"
)

type SettingsCtrl struct{ st *store.Store }

func New(st *store.Store) *SettingsCtrl { return &SettingsCtrl{st} }

func (h *SettingsCtrl) GetAlerts(c echo.Context) error {
	return c.JSON(http.StatusOK, h.st.AlertSettings())
}

func (h *SettingsCtrl) PatchAlerts(c echo.Context) error {
	var upd store.AlertSettingsUpdate
	if err := c.Bind(&upd); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.st.UpdateAlertSettings(upd); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, h.st.AlertSettings())
}

func (h *SettingsCtrl) ResetAlerts(c echo.Context) error {
	if err := h.st.ResetAlertSettings(); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, h.st.AlertSettings())
}

func (h *SettingsCtrl) GetFarm(c echo.Context) error {
	return c.JSON(http.StatusOK, h.st.FarmSettings())
}

func (h *SettingsCtrl) PatchFarm(c echo.Context) error {
	var upd store.FarmSettingsUpdate
	if err := c.Bind(&upd); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.st.UpdateFarmSettings(upd); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, h.st.FarmSettings())
}

func (h *SettingsCtrl) ResetFarm(c echo.Context) error {
	if err := h.st.ResetFarmSettings(); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, h.st.FarmSettings())
}

func (h *SettingsCtrl) DismissOnboarding(c echo.Context) error {
	if err := h.st.DismissOnboarding(); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
