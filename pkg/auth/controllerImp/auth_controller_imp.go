package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"krishi/pkg/apperr"
	"krishi/pkg/auth/controller"
	"krishi/pkg/auth/service"
	"krishi/pkg/envelope"
	"krishi/pkg/middleware"
)

type authCtrl struct {
	svc service.AuthService
	log *zap.Logger
}

func NewAuthController(svc service.AuthService, log *zap.Logger) controller.AuthController {
	return &authCtrl{svc: svc, log: log.Named("auth")}
}

func (h *authCtrl) Register(c echo.Context) error {
	payload, err := envelope.Payload(c)
	if err != nil {
		return envelope.Error(c, "Bad Request", http.StatusBadRequest)
	}
	if missing := envelope.Missing(payload, "name", "email", "password"); len(missing) > 0 {
		return envelope.Error(c, envelope.MissingMessage(missing), http.StatusBadRequest)
	}

	in, bad, err := envelope.Texts(payload, "name", "email", "password", "mobile", "preferred_language")
	if err != nil {
		return envelope.Error(c, "Invalid value for "+bad, http.StatusBadRequest)
	}

	err = h.svc.Register(c.Request().Context(), service.RegisterInput{
		Name:              in["name"],
		Email:             in["email"],
		Mobile:            in["mobile"],
		Password:          in["password"],
		PreferredLanguage: in["preferred_language"],
	})
	switch {
	case err == nil:
		return envelope.Created(c, "User registered", nil)
	case errors.Is(err, apperr.ErrDuplicateEmail):
		return envelope.Error(c, "Email already registered", http.StatusBadRequest)
	default:
		h.log.Error("register failed", zap.Error(err))
		return envelope.ErrorWithData(c, "Registration failed", echo.Map{"error": apperr.Diagnostic(err)}, http.StatusInternalServerError)
	}
}

func (h *authCtrl) Login(c echo.Context) error {
	payload, err := envelope.Payload(c)
	if err != nil {
		return envelope.Error(c, "Bad Request", http.StatusBadRequest)
	}
	if missing := envelope.Missing(payload, "email", "password"); len(missing) > 0 {
		return envelope.Error(c, envelope.MissingMessage(missing), http.StatusBadRequest)
	}

	in, bad, err := envelope.Texts(payload, "email", "password")
	if err != nil {
		return envelope.Error(c, "Invalid value for "+bad, http.StatusBadRequest)
	}

	tok, err := h.svc.Login(c.Request().Context(), in["email"], in["password"])
	switch {
	case err == nil:
		return envelope.Success(c, "Login successful", echo.Map{"access_token": tok})
	case errors.Is(err, apperr.ErrInvalidCredentials):
		return envelope.Error(c, "Invalid credentials", http.StatusUnauthorized)
	default:
		h.log.Error("login failed", zap.Error(err))
		return envelope.ErrorWithData(c, "Login failed", echo.Map{"error": apperr.Diagnostic(err)}, http.StatusInternalServerError)
	}
}

func (h *authCtrl) Profile(c echo.Context) error {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return envelope.Error(c, "Unauthorized", http.StatusUnauthorized)
	}
	u, err := h.svc.Profile(c.Request().Context(), id.UserID)
	switch {
	case err == nil:
		return envelope.Success(c, "Profile fetched", echo.Map{"user": u})
	case errors.Is(err, apperr.ErrNotFound):
		return envelope.Error(c, "User not found", http.StatusNotFound)
	default:
		h.log.Error("profile failed", zap.Uint("user_id", id.UserID), zap.Error(err))
		return envelope.ErrorWithData(c, "Failed to fetch profile", echo.Map{"error": apperr.Diagnostic(err)}, http.StatusInternalServerError)
	}
}

func (h *authCtrl) Protected(c echo.Context) error {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return envelope.Error(c, "Unauthorized", http.StatusUnauthorized)
	}
	return envelope.Success(c, "Hello, you accessed a protected route", echo.Map{"user": id})
}
