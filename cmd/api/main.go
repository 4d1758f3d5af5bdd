package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go-hrms/internal/app"
	"go-hrms/internal/bootstrap"
	"go-hrms/internal/config"
	"go-hrms/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg)
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// build dependency + routes
	if err := app.BuildApp(r, cfg, logger); err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = bootstrap.RunHTTPServer(
		ctx,
		r,
		bootstrap.ServerConfig{
			Port:            cfg.HTTP.Port,
			ReadTimeout:     cfg.HTTP.ReadTimeout,
			WriteTimeout:    cfg.HTTP.WriteTimeout,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
		},
		bootstrap.NewZapAuditLogger(logger),
		logger,
	)
	if err != nil {
		logger.Fatal("http server failed", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) *zap.Logger {
	build := zap.NewDevelopment
	if cfg.IsProduction() {
		build = zap.NewProduction
	}
	logger, err := build()
	if err != nil {
		panic(err)
	}
	return logger
}
