package controllerImp

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"cropbase/entities"
	"cropbase/pkg/export"
	"cropbase/pkg/store"
)

type FieldCtrl struct{ st *store.Store }

func New(st *store.Store) *FieldCtrl { return &FieldCtrl{st} }

func (h *FieldCtrl) List(c echo.Context) error { return c.JSON(http.StatusOK, h.st.Fields()) }

func (h *FieldCtrl) Get(c echo.Context) error {
	f, ok := h.st.Field(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FieldCtrl) Create(c echo.Context) error {
	var f entities.Field
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if f.ID == "" {
		f.ID = h.st.NextID("field")
	}
	if err := h.st.CreateField(f); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	f, _ = h.st.Field(f.ID) // derived columns were just recomputed
	return c.JSON(http.StatusCreated, f)
}

func (h *FieldCtrl) Patch(c echo.Context) error {
	var upd store.FieldUpdate
	if err := c.Bind(&upd); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.st.UpdateField(c.Param("id"), upd); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	f, _ := h.st.Field(c.Param("id"))
	return c.JSON(http.StatusOK, f)
}

func (h *FieldCtrl) Delete(c echo.Context) error {
	if err := h.st.DeleteField(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *FieldCtrl) Tasks(c echo.Context) error {
	return c.JSON(http.StatusOK, h.st.FieldTasks(c.Param("id")))
}

func (h *FieldCtrl) Notes(c echo.Context) error {
	return c.JSON(http.StatusOK, h.st.FieldNotes(c.Param("id")))
}

func (h *FieldCtrl) Export(c echo.Context) error {
	t := export.Fields(h.st.Fields())
	if t.Empty() {
		return c.NoContent(http.StatusNoContent)
	}
	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", t.Name))
	c.Response().WriteHeader(http.StatusOK)
	return export.Write(c.Response(), t)
}
