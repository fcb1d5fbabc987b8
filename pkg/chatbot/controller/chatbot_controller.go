package controller

import "github.com/labstack/echo/v4"

type ChatbotController interface {
	Chat(c echo.Context) error
	AgriChat(c echo.Context) error
}
