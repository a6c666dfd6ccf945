package controller

import "github.com/labstack/echo/v4"

type ModelController interface {
	Check(c echo.Context) error
	CheckJSON(c echo.Context) error
}
