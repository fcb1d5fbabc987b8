package router

import (
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"krishi/config"
	authctl "krishi/pkg/auth/controller"
	"krishi/pkg/auth/token"
	chatctl "krishi/pkg/chatbot/controller"
	marketctl "krishi/pkg/market/controller"
	"krishi/pkg/middleware"
	pestctl "krishi/pkg/pest/controller"
	soilctl "krishi/pkg/soil/controller"
	weatherctl "krishi/pkg/weather/controller"
)

type Controllers struct {
	Auth    authctl.AuthController
	Chatbot chatctl.ChatbotController
	Market  marketctl.MarketController
	Soil    soilctl.SoilController
	Pest    pestctl.PestController
	Weather weatherctl.WeatherController
	Health  interface{ Health(echo.Context) error }
}

func New(e *echo.Echo, cfg config.AppConfig, tokens *token.Issuer, log *zap.Logger, ctl Controllers) *echo.Echo {
	e.HTTPErrorHandler = ErrorHandler(log)
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLog(log))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))

	requireToken := middleware.JWT(tokens)

	e.GET("/health", ctl.Health.Health)

	api := e.Group("/api")
	api.POST("/register", ctl.Auth.Register)
	api.POST("/login", ctl.Auth.Login)
	api.GET("/profile", ctl.Auth.Profile, requireToken)
	api.GET("/protected", ctl.Auth.Protected, requireToken)

	e.POST("/chatbot", ctl.Chatbot.Chat)
	e.POST("/agri-chatbot", ctl.Chatbot.AgriChat)
	e.POST("/soil-test", ctl.Soil.Test)

	e.GET("/market/prices", ctl.Market.Prices, requireToken)

	pest := e.Group("/pest", requireToken)
	pest.POST("/detect", ctl.Pest.Detect)
	pest.GET("/history", ctl.Pest.History)

	weather := e.Group("/weather", requireToken)
	weather.GET("/current", ctl.Weather.Current)
	weather.GET("/forecast", ctl.Weather.Forecast)

	if cfg.StaticDir != "" {
		if _, err := os.Stat(cfg.StaticDir); err == nil {
			e.Static("/static", cfg.StaticDir)
			if index := filepath.Join(cfg.StaticDir, "index.html"); fileExists(index) {
				e.File("/", index)
			}
		} else {
			log.Warn("static dir not found, not serving /static", zap.String("dir", cfg.StaticDir))
		}
	}
	return e
}

func fileExists(p string) bool {
	st, err := os.Stat(p)
	return err == nil && !st.IsDir()
}
