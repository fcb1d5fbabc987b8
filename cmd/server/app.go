package main

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"krishi/pkg/ai"
	authCtrlImp "krishi/pkg/auth/controllerImp"
	authRepoImp "krishi/pkg/auth/repositoryImp"
	authSvcImp "krishi/pkg/auth/serviceImp"
	"krishi/pkg/auth/token"
	chatCtrlImp "krishi/pkg/chatbot/controllerImp"
	healthCtrlImp "krishi/pkg/health/controllerImp"
	"krishi/pkg/market"
	marketCtrlImp "krishi/pkg/market/controllerImp"
	marketRepoImp "krishi/pkg/market/repositoryImp"
	marketSvcImp "krishi/pkg/market/serviceImp"
	"krishi/pkg/pest/classifier"
	pestCtrlImp "krishi/pkg/pest/controllerImp"
	"krishi/pkg/pest/imagestore"
	pestRepoImp "krishi/pkg/pest/repositoryImp"
	pestSvcImp "krishi/pkg/pest/serviceImp"
	soilCtrlImp "krishi/pkg/soil/controllerImp"
	"krishi/pkg/weather"
	weatherCtrlImp "krishi/pkg/weather/controllerImp"
	"krishi/router"
)

func newImageStore(ctx context.Context, e *env) (imagestore.Store, error) {
	switch e.cfg.ImageStore {
	case "", "local":
		return imagestore.NewLocal(e.cfg.UploadDir, nil), nil
	case "s3":
		return imagestore.NewS3(ctx, e.cfg.S3Bucket, e.cfg.S3Prefix)
	default:
		return nil, fmt.Errorf("unsupported IMAGE_STORE %q", e.cfg.ImageStore)
	}
}

// buildApp wires repositories, services and controllers onto a new echo.
func buildApp(ctx context.Context, e *env, db *gorm.DB) (*echo.Echo, error) {
	fallback, err := market.LoadTable(e.cfg.MarketFallbackFile)
	if err != nil {
		return nil, fmt.Errorf("market fallback: %w", err)
	}
	store, err := newImageStore(ctx, e)
	if err != nil {
		return nil, err
	}
	tokens := token.NewIssuer(e.cfg.JWTSecret, e.cfg.JWTTTL)
	log := e.log

	ctl := router.Controllers{
		Auth: authCtrlImp.NewAuthController(
			authSvcImp.New(authRepoImp.New(db), tokens, e.cfg.BcryptCost, log), log),
		Chatbot: chatCtrlImp.New(ai.New(e.cfg.GeminiAPIKey), ai.NewAgri(e.cfg.GeminiAPIKey), log),
		Market:  marketCtrlImp.New(marketSvcImp.New(marketRepoImp.New(db), fallback, log)),
		Soil:    soilCtrlImp.New(),
		Pest: pestCtrlImp.New(
			pestSvcImp.New(pestRepoImp.New(db), store, classifier.NewMock(nil), log), log),
		Weather: weatherCtrlImp.New(weather.NewMock(nil), log),
		Health:  healthCtrlImp.NewHealthCtrl(db, log),
	}

	srv := echo.New()
	srv.HideBanner = true
	return router.New(srv, e.cfg, tokens, log, ctl), nil
}
