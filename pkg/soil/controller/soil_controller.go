package controller

import "github.com/labstack/echo/v4"

type SoilController interface {
	Test(c echo.Context) error
}
