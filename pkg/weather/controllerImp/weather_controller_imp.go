package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"krishi/pkg/apperr"
	"krishi/pkg/envelope"
	"krishi/pkg/weather"
	"krishi/pkg/weather/controller"
)

type weatherCtrl struct {
	p   weather.Provider
	log *zap.Logger
}

func New(p weather.Provider, log *zap.Logger) controller.WeatherController {
	return &weatherCtrl{p: p, log: log.Named("weather")}
}

func (h *weatherCtrl) Current(c echo.Context) error {
	w, err := h.p.Current(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return envelope.Success(c, "Weather fetched", echo.Map{"weather": w})
}

func (h *weatherCtrl) Forecast(c echo.Context) error {
	days, err := h.p.Forecast(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return envelope.Success(c, "Forecast fetched", echo.Map{"forecast": days})
}

func (h *weatherCtrl) fail(c echo.Context, err error) error {
	h.log.Error("weather provider failed", zap.Error(err))
	return envelope.ErrorWithData(c, "Failed to fetch weather", echo.Map{"error": apperr.Diagnostic(err)}, http.StatusInternalServerError)
}
