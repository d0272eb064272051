package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/starterkit/render-starter/docs"
	"github.com/starterkit/render-starter/internal/config"
	"github.com/starterkit/render-starter/internal/handler"
	"github.com/starterkit/render-starter/internal/repository"
	"github.com/starterkit/render-starter/internal/routes"
	"github.com/starterkit/render-starter/internal/server"
	"github.com/starterkit/render-starter/internal/service"
	pkglogger "github.com/starterkit/render-starter/pkg/logger"
)

// @title           Render Starter API
// @version         1.0.0
// @description     Sample API service with health probes, items and diagnostics.
//
// @license.name    MIT
//
// @BasePath        /

// Version is overridden at build time with -ldflags "-X main.Version=..."
var Version = "1.0.0"

func main() {
	started := time.Now()
	dotenvFiles, err := config.LoadDotEnv()
	if err != nil {
		log.Fatalf("Failed to load env files: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// logger
	pkglogger.InitStructured(cfg.Env, cfg.Log.Level)
	pkglogger.Info("NODE_ENV=%s, loaded env files: %v", cfg.Env, dotenvFiles)
	for _, w := range cfg.Warnings() {
		pkglogger.Warn("Config warning: %s", w)
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	health := service.NewHealthService(started, Version, cfg.Env)

	closeStores := registerChecks(cfg, health)
	defer closeStores()

	var registry *prometheus.Registry
	if cfg.Features.Metrics {
		registry = prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		pkglogger.Info("Metrics enabled at /metrics")
	}

	docs.SwaggerInfo.Version = Version
	router := routes.NewRouter(cfg, routes.Deps{
		Info:    handler.AppInfo{Name: "render-starter", Version: Version},
		Health:  health,
		Items:   service.NewItemService(repository.NewSampleItemRepository()),
		Metrics: registry,
	})

	if err := server.New(cfg.Addr(), router).Run(ctx); err != nil {
		pkglogger.Error("Server error: %v", err)
		os.Exit(1)
	}
	pkglogger.Info("Server stopped")
}
