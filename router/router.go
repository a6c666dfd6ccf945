package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	planCtrl interface {
		Index(echo.Context) error
		Submit(echo.Context) error
		Download(echo.Context) error
		SubmitJSON(echo.Context) error
	},
	modelCtrl interface {
		Check(echo.Context) error
		CheckJSON(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/", planCtrl.Index)
	e.POST("/plan", planCtrl.Submit)
	e.GET("/plan/download", planCtrl.Download)
	e.POST("/models/check", modelCtrl.Check)
	e.GET("/health", healthCtrl.Health)

	api := e.Group("/api/v1")
	api.POST("/plan", planCtrl.SubmitJSON)
	api.POST("/models", modelCtrl.CheckJSON)
	return e
}
