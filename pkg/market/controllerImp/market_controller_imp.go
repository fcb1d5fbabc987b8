package controllerImp

import (
	"strings"

	"github.com/labstack/echo/v4"

	"krishi/pkg/envelope"
	"krishi/pkg/market"
	"krishi/pkg/market/controller"
	"krishi/pkg/market/service"
)

type marketCtrl struct{ svc service.PriceService }

func New(svc service.PriceService) controller.MarketController { return &marketCtrl{svc} }

func (h *marketCtrl) Prices(c echo.Context) error {
	state := strings.TrimSpace(c.QueryParam("state"))
	if state == "" {
		state = "TN"
	}
	crop := strings.TrimSpace(c.QueryParam("crop"))
	if crop == "" {
		crop = "rice"
	}

	rows, src := h.svc.Prices(c.Request().Context(), state, crop)
	msg := "Prices fetched successfully"
	if src == market.SourceMock {
		msg = "Prices fetched (mock)"
	}
	return envelope.Success(c, msg, echo.Map{"prices": rows})
}
