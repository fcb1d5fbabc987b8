package router

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"krishi/pkg/envelope"
)

var messages = map[int]string{
	http.StatusBadRequest:          "Bad Request",
	http.StatusUnauthorized:        "Unauthorized",
	http.StatusNotFound:            "Not Found",
	http.StatusMethodNotAllowed:    "Method Not Allowed",
	http.StatusInternalServerError: "Internal Server Error",
}

// ErrorHandler renders errors that escape handlers (unknown routes, bad
// methods, panics caught by Recover) as envelopes. Details of non-HTTP errors
// are logged, never returned.
func ErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	log = log.Named("http")
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
		}
		if code >= http.StatusInternalServerError {
			log.Error("unhandled error", zap.String("uri", c.Request().RequestURI), zap.Error(err))
		}
		msg, ok := messages[code]
		if !ok {
			msg = http.StatusText(code)
		}
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = envelope.Error(c, msg, code)
		}
		if err != nil {
			log.Warn("write error response", zap.Error(err))
		}
	}
}
