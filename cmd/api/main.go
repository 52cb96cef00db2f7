package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/nstc-app/management/internal/config"
	"github.com/nstc-app/management/internal/database"
	"github.com/nstc-app/management/internal/logger"
	"github.com/nstc-app/management/internal/metrics"
	"github.com/nstc-app/management/internal/server"
	"github.com/nstc-app/management/internal/services"
	"github.com/nstc-app/management/internal/version"
)

func main() {
	logger.Init(false, os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		logger.Log().WithError(err).Fatal("load config")
	}

	rotator := logger.RotatingFile(cfg.LogDir, "data/logs", "nstc.log")
	defer rotator.Close()
	logger.Init(cfg.Debug, io.MultiWriter(os.Stdout, rotator))

	logger.Log().Infof("starting %s backend on version %s", version.Name, version.Full())

	db, err := database.Connect(cfg.DatabasePath, database.Options{LogQueries: !cfg.IsProduction()})
	if err != nil {
		logger.Log().WithError(err).Fatal("connect database")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Log().WithError(err).Warn("close database")
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.Register(registry)

	srv, err := server.New(db, cfg, registry)
	if err != nil {
		logger.Log().WithError(err).Fatal("build server")
	}

	monitor := services.NewStatusMonitor(services.NewDiagnosticsService(db))
	if err := monitor.Start(cfg.StatusSchedule); err != nil {
		logger.Log().WithError(err).Fatal("start status monitor")
	}
	defer monitor.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Log().WithField("port", cfg.HTTPPort).Infof("starting %s backend", version.Name)
	if err := srv.Run(ctx); err != nil {
		logger.Log().WithError(err).Error("server error")
	}
	logger.Log().Info("shutdown complete")
}
