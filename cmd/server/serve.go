package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"krishi/database"
)

const shutdownGrace = 10 * time.Second

func newServeCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate the schema and serve the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, e)
		},
	}
}

func serve(ctx context.Context, e *env) error {
	db, err := database.Open(e.cfg, e.log)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			e.log.Warn("close db", zap.Error(err))
		}
	}()
	if err := database.Migrate(db); err != nil {
		return err
	}

	app, err := buildApp(ctx, e, db)
	if err != nil {
		return err
	}

	errc := make(chan error, 1)
	go func() {
		e.log.Info("listening", zap.String("port", e.cfg.Port), zap.String("db", e.cfg.DBDriver))
		errc <- app.Start(":" + e.cfg.Port)
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	e.log.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := app.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
