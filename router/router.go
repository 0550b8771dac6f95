package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	fieldCtrl interface {
		List(echo.Context) error
		Get(echo.Context) error
		Create(echo.Context) error
		Patch(echo.Context) error
		Delete(echo.Context) error
		Tasks(echo.Context) error
		Notes(echo.Context) error
		Export(echo.Context) error
	},
	taskCtrl interface {
		List(echo.Context) error
		Create(echo.Context) error
		Patch(echo.Context) error
		Delete(echo.Context) error
		Done(echo.Context) error
		Snooze(echo.Context) error
		BulkDone(echo.Context) error
		BulkDelete(echo.Context) error
		Export(echo.Context) error
	},
	noteCtrl interface {
		List(echo.Context) error
		Add(echo.Context) error
		Delete(echo.Context) error
	},
	importsCtrl interface {
		List(echo.Context) error
		Upload(echo.Context) error
		Delete(echo.Context) error
		Templates(echo.Context) error
		AddTemplate(echo.Context) error
		DeleteTemplate(echo.Context) error
	},
	notifyCtrl interface {
		List(echo.Context) error
		MarkRead(echo.Context) error
		MarkAllRead(echo.Context) error
	},
	settingsCtrl interface {
		GetAlerts(echo.Context) error
		PatchAlerts(echo.Context) error
		ResetAlerts(echo.Context) error
		GetFarm(echo.Context) error
		PatchFarm(echo.Context) error
		ResetFarm(echo.Context) error
		DismissOnboarding(echo.Context) error
	},
	overviewCtrl interface {
		Health(echo.Context) error
		Stats(echo.Context) error
		Attention(echo.Context) error
		Changes(echo.Context) error
		Reset(echo.Context) error
	},
) *echo.Echo {
	e.GET("/health", overviewCtrl.Health)

	f := e.Group("/fields")
	f.GET("", fieldCtrl.List)
	f.GET("/export", fieldCtrl.Export)
	f.POST("", fieldCtrl.Create)
	f.GET("/:id", fieldCtrl.Get)
	f.PATCH("/:id", fieldCtrl.Patch)
	f.DELETE("/:id", fieldCtrl.Delete)
	f.GET("/:id/tasks", fieldCtrl.Tasks)
	f.GET("/:id/notes", fieldCtrl.Notes)

	t := e.Group("/tasks")
	t.GET("", taskCtrl.List)
	t.GET("/export", taskCtrl.Export)
	t.POST("", taskCtrl.Create)
	t.PATCH("/:id", taskCtrl.Patch)
	t.DELETE("/:id", taskCtrl.Delete)
	t.POST("/:id/done", taskCtrl.Done)
	t.POST("/:id/snooze", taskCtrl.Snooze)
	t.POST("/bulk/done", taskCtrl.BulkDone)
	t.POST("/bulk/delete", taskCtrl.BulkDelete)

	e.GET("/notes", noteCtrl.List)
	e.POST("/notes", noteCtrl.Add)
	e.DELETE("/notes/:id", noteCtrl.Delete)

	im := e.Group("/imports")
	im.GET("", importsCtrl.List)
	im.POST("/upload", importsCtrl.Upload)
	im.GET("/templates", importsCtrl.Templates)
	im.POST("/templates", importsCtrl.AddTemplate)
	im.DELETE("/templates/:id", importsCtrl.DeleteTemplate)
	im.DELETE("/:id", importsCtrl.Delete)

	e.GET("/notifications", notifyCtrl.List)
	e.POST("/notifications/read-all", notifyCtrl.MarkAllRead)
	e.POST("/notifications/:id/read", notifyCtrl.MarkRead)

	s := e.Group("/settings")
	s.GET("/alerts", settingsCtrl.GetAlerts)
	s.PATCH("/alerts", settingsCtrl.PatchAlerts)
	s.POST("/alerts/reset", settingsCtrl.ResetAlerts)
	s.GET("/farm", settingsCtrl.GetFarm)
	s.PATCH("/farm", settingsCtrl.PatchFarm)
	s.POST("/farm/reset", settingsCtrl.ResetFarm)

	e.POST("/onboarding/dismiss", settingsCtrl.DismissOnboarding)

	e.GET("/changes", overviewCtrl.Changes)
	e.GET("/stats", overviewCtrl.Stats)
	e.GET("/attention", overviewCtrl.Attention)
	e.POST("/reset", overviewCtrl.Reset)

	return e
}
