package controllerImp

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"cropbase/entities"
	"cropbase/pkg/store"
)

type NoteCtrl struct{ st *store.Store }

func New(st *store.Store) *NoteCtrl { return &NoteCtrl{st} }

func (h *NoteCtrl) List(c echo.Context) error { return c.JSON(http.StatusOK, h.st.Notes()) }

func (h *NoteCtrl) Add(c echo.Context) error {
	var n entities.Note
	if err := c.Bind(&n); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if n.ID == "" {
		n.ID = h.st.NextID("note")
	}
	if n.Timestamp == "" {
		n.Timestamp = time.Now().Format("2006-01-02T15:04:05")
	}
	if err := h.st.AddNote(n); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, n)
}

func (h *NoteCtrl) Delete(c echo.Context) error {
	if err := h.st.DeleteNote(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
