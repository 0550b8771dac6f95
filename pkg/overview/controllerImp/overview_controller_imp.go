package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cropbase/pkg/store"
)

// OverviewCtrl serves the dashboard reads plus the demo reset. today is
// injected so a simulated date can drive the freshness math.
type OverviewCtrl struct {
	st    *store.Store
	today func() string
}

func New(st *store.Store, today func() string) *OverviewCtrl { return &OverviewCtrl{st, today} }

func (h *OverviewCtrl) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *OverviewCtrl) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.st.FarmStatsFor(h.today()))
}

func (h *OverviewCtrl) Attention(c echo.Context) error {
	items := h.st.FieldsNeedingAttention()
	if items == nil {
		items = []store.AttentionItem{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *OverviewCtrl) Changes(c echo.Context) error {
	return c.JSON(http.StatusOK, h.st.Changes())
}

func (h *OverviewCtrl) Reset(c echo.Context) error {
	if err := h.st.ResetToDemo(); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
