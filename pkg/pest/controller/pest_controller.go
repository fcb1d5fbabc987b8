package controller

import "github.com/labstack/echo/v4"

type PestController interface {
	Detect(c echo.Context) error
	History(c echo.Context) error
}
