package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"cropbase/config"
	"cropbase/database"
	"cropbase/router"

	fieldCtrlImp "cropbase/pkg/field/controllerImp"
	importsCtrlImp "cropbase/pkg/imports/controllerImp"
	noteCtrlImp "cropbase/pkg/note/controllerImp"
	notifyCtrlImp "cropbase/pkg/notify/controllerImp"
	overviewCtrlImp "cropbase/pkg/overview/controllerImp"
	settingsCtrlImp "cropbase/pkg/settings/controllerImp"
	taskCtrlImp "cropbase/pkg/task/controllerImp"

	"cropbase/pkg/store"
)

func main() {
	cfg := config.Load()

	db := database.OpenSQLite(cfg.DBPath)
	st, err := store.New(database.NewSnapshotRepo(db))
	if err != nil {
		log.Fatalf("store: %v", err)
	}

	today := func() string {
		if cfg.SimToday != "" {
			return cfg.SimToday
		}
		return time.Now().Format("2006-01-02")
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())

	router.New(
		e,
		fieldCtrlImp.New(st),
		taskCtrlImp.New(st),
		noteCtrlImp.New(st),
		importsCtrlImp.New(st, today),
		notifyCtrlImp.New(st),
		settingsCtrlImp.New(st),
		overviewCtrlImp.New(st, today),
	)

	log.Printf("[srv] listening on :%s", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
