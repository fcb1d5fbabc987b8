package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"krishi/pkg/envelope"
	"krishi/pkg/soil"
	"krishi/pkg/soil/controller"
)

type soilCtrl struct{}

func New() controller.SoilController { return &soilCtrl{} }

type testResult struct {
	soil.Reading
	Recommendations []string `json:"recommendations"`
}

func (h *soilCtrl) Test(c echo.Context) error {
	payload, err := envelope.Payload(c)
	if err != nil {
		return envelope.Error(c, "Bad Request", http.StatusBadRequest)
	}
	fields := []string{"ph", "nitrogen", "phosphorus", "potassium"}
	if missing := envelope.Missing(payload, fields...); len(missing) > 0 {
		return envelope.Error(c, envelope.MissingMessage(missing), http.StatusBadRequest)
	}

	vals := make([]float64, len(fields))
	for i, f := range fields {
		if vals[i], err = envelope.Float(payload, f); err != nil {
			return envelope.Error(c, "Invalid value for "+f, http.StatusBadRequest)
		}
	}
	r := soil.Reading{PH: vals[0], Nitrogen: vals[1], Phosphorus: vals[2], Potassium: vals[3]}
	return envelope.Success(c, "Soil test processed", testResult{Reading: r, Recommendations: r.Advise()})
}
