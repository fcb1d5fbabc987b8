package controllerImp

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"krishi/pkg/apperr"
	"krishi/pkg/envelope"
	"krishi/pkg/middleware"
	"krishi/pkg/pest/controller"
	"krishi/pkg/pest/service"
)

type pestCtrl struct {
	svc service.PestService
	log *zap.Logger
}

func New(svc service.PestService, log *zap.Logger) controller.PestController {
	return &pestCtrl{svc: svc, log: log.Named("pest")}
}

func (h *pestCtrl) Detect(c echo.Context) error {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return envelope.Error(c, "Unauthorized", http.StatusUnauthorized)
	}
	payload, err := envelope.Payload(c)
	if err != nil {
		return envelope.Error(c, "Bad Request", http.StatusBadRequest)
	}

	d, err := h.svc.Detect(c.Request().Context(), id.UserID, payload["image"])
	switch {
	case err == nil:
		return envelope.Success(c, fmt.Sprintf("Detected %s with %d%% confidence", d.Name, d.Confidence),
			echo.Map{"pest": d})
	case errors.Is(err, apperr.ErrMissingImage):
		return envelope.Error(c, "No image provided", http.StatusBadRequest)
	case errors.Is(err, apperr.ErrInvalidImageData):
		return envelope.ErrorWithData(c, "Invalid image data", echo.Map{"error": apperr.Diagnostic(err)}, http.StatusBadRequest)
	default:
		h.log.Error("detect failed", zap.Uint("user_id", id.UserID), zap.Error(err))
		return envelope.ErrorWithData(c, "Failed to process image", echo.Map{"error": apperr.Diagnostic(err)}, http.StatusInternalServerError)
	}
}

func (h *pestCtrl) History(c echo.Context) error {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return envelope.Error(c, "Unauthorized", http.StatusUnauthorized)
	}
	rows, err := h.svc.History(c.Request().Context(), id.UserID)
	if err != nil {
		h.log.Error("history failed", zap.Uint("user_id", id.UserID), zap.Error(err))
		return envelope.ErrorWithData(c, "Failed to fetch history", echo.Map{"error": apperr.Diagnostic(err)}, http.StatusInternalServerError)
	}
	return envelope.Success(c, "History fetched", echo.Map{"detections": rows})
}
