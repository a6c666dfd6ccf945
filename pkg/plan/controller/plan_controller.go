package controller

import "github.com/labstack/echo/v4"

type PlanController interface {
	Index(c echo.Context) error
	Submit(c echo.Context) error
	Download(c echo.Context) error
	SubmitJSON(c echo.Context) error
}
