package controller

import "github.com/labstack/echo/v4"

type AuthController interface {
	Register(c echo.Context) error
	Login(c echo.Context) error
	Profile(c echo.Context) error
	Protected(c echo.Context) error
}
