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

type TaskCtrl struct{ st *store.Store }

func New(st *store.Store) *TaskCtrl { return &TaskCtrl{st} }

func fail(c echo.Context, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func (h *TaskCtrl) List(c echo.Context) error { return c.JSON(http.StatusOK, h.st.Tasks()) }

func (h *TaskCtrl) Create(c echo.Context) error {
	var t entities.Task
	if err := c.Bind(&t); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if t.ID == "" {
		t.ID = h.st.NextID("task")
	}
	if t.Status == "" {
		t.Status = "todo"
	}
	if t.Priority == "" {
		t.Priority = "medium"
	}
	if t.Field == "" {
		if f, ok := h.st.Field(t.FieldID); ok {
			t.Field = f.Name
		}
	}
	if err := h.st.CreateTask(t); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *TaskCtrl) Patch(c echo.Context) error {
	var upd store.TaskUpdate
	if err := c.Bind(&upd); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.st.UpdateTask(c.Param("id"), upd); err != nil {
		return fail(c, err)
	}
	t, _ := h.st.Task(c.Param("id"))
	return c.JSON(http.StatusOK, t)
}

func (h *TaskCtrl) Delete(c echo.Context) error {
	if err := h.st.DeleteTask(c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *TaskCtrl) Done(c echo.Context) error {
	if err := h.st.MarkTaskDone(c.Param("id")); err != nil {
		return fail(c, err)
	}
	t, _ := h.st.Task(c.Param("id"))
	return c.JSON(http.StatusOK, t)
}

func (h *TaskCtrl) Snooze(c echo.Context) error {
	var body struct {
		NewDate string `json:"new_date"`
	}
	if err := c.Bind(&body); err != nil || body.NewDate == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.st.SnoozeTask(c.Param("id"), body.NewDate); err != nil {
		return fail(c, err)
	}
	t, _ := h.st.Task(c.Param("id"))
	return c.JSON(http.StatusOK, t)
}

func (h *TaskCtrl) BulkDone(c echo.Context) error {
	var body struct {
		IDs []string `json:"ids"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.st.BulkMarkTasksDone(body.IDs); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *TaskCtrl) BulkDelete(c echo.Context) error {
	var body struct {
		IDs []string `json:"ids"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.st.BulkDeleteTasks(body.IDs); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *TaskCtrl) Export(c echo.Context) error {
	t := export.Tasks(h.st.Tasks())
	if t.Empty() {
		return c.NoContent(http.StatusNoContent)
	}
	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", t.Name))
	c.Response().WriteHeader(http.StatusOK)
	return export.Write(c.Response(), t)
}
