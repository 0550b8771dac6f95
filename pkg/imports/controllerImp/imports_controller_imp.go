package controllerImp

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"cropbase/entities"
	"cropbase/pkg/importer"
	"cropbase/pkg/store"
)

type ImportsCtrl struct {
	st    *store.Store
	today func() string
}

func New(st *store.Store, today func() string) *ImportsCtrl { return &ImportsCtrl{st, today} }

func (h *ImportsCtrl) List(c echo.Context) error { return c.JSON(http.StatusOK, h.st.Imports()) }

// Upload accepts a multipart form with a "file" part (CSV or XLSX) and
// an optional save_template=true to keep the column layout for reuse.
func (h *ImportsCtrl) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing file"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	defer src.Close()

	parsed, err := importer.Parse(fh.Filename, src)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	res, err := importer.Apply(h.st, parsed, h.today())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if res.Record.Status != "failed" {
		if c.FormValue("save_template") == "true" {
			if _, err := importer.SaveTemplate(h.st, parsed); err != nil {
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
			}
		} else if err := importer.TouchMatchingTemplate(h.st, parsed, h.today()); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
	}
	return c.JSON(http.StatusCreated, res.Record)
}

func (h *ImportsCtrl) Delete(c echo.Context) error {
	if err := h.st.DeleteImportRecord(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *ImportsCtrl) Templates(c echo.Context) error {
	return c.JSON(http.StatusOK, h.st.MappingTemplates())
}

func (h *ImportsCtrl) AddTemplate(c echo.Context) error {
	var t entities.MappingTemplate
	if err := c.Bind(&t); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if t.ID == "" {
		t.ID = h.st.NextID("template")
	}
	if t.Created == "" {
		t.Created = time.Now().Format("2006-01-02")
	}
	if err := h.st.AddMappingTemplate(t); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *ImportsCtrl) DeleteTemplate(c echo.Context) error {
	if err := h.st.DeleteMappingTemplate(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
