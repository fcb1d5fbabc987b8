package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"krishi/pkg/envelope"
)

type HealthCtrl struct {
	db      *gorm.DB
	started time.Time
	log     *zap.Logger
}

func NewHealthCtrl(db *gorm.DB, log *zap.Logger) *HealthCtrl {
	return &HealthCtrl{db: db, started: time.Now(), log: log.Named("health")}
}

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	db := check{OK: true}
	if h.db == nil {
		db = check{Err: "gorm db is nil"}
	} else if sqlDB, err := h.db.DB(); err != nil {
		db = check{Err: "db.DB(): " + err.Error()}
	} else if err := sqlDB.PingContext(ctx); err != nil {
		db = check{Err: "ping: " + err.Error()}
	}

	data := echo.Map{
		"database":   db,
		"uptime_sec": int(time.Since(h.started).Seconds()),
		"time":       time.Now().UTC().Format(time.RFC3339),
	}
	if !db.OK {
		h.log.Warn("health check failed", zap.String("database", db.Err))
		return envelope.ErrorWithData(c, "Service unavailable", data, http.StatusServiceUnavailable)
	}
	return envelope.Success(c, "OK", data)
}
