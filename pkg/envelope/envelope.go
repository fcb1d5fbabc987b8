// Package envelope writes the uniform {status, message, data} response body
// and validates the loosely typed JSON payloads the endpoints accept.
package envelope

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Body is the wire shape of every JSON response.
type Body struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Respond writes the envelope. A nil data becomes an empty object.
func Respond(c echo.Context, status, message string, data any, code int) error {
	if data == nil {
		data = echo.Map{}
	}
	return c.JSON(code, Body{Status: status, Message: message, Data: data})
}

func Success(c echo.Context, message string, data any) error {
	return Respond(c, StatusSuccess, message, data, http.StatusOK)
}

func Created(c echo.Context, message string, data any) error {
	return Respond(c, StatusSuccess, message, data, http.StatusCreated)
}

// Error writes an error envelope with empty data. Codes below 400 are
// promoted to 500 so an error body never carries a success code.
func Error(c echo.Context, message string, code int) error {
	return ErrorWithData(c, message, nil, code)
}

func ErrorWithData(c echo.Context, message string, data any, code int) error {
	if code < http.StatusBadRequest {
		code = http.StatusInternalServerError
	}
	return Respond(c, StatusError, message, data, code)
}
