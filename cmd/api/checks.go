package main

import (
	"context"
	"fmt"

	"github.com/starterkit/render-starter/internal/config"
	"github.com/starterkit/render-starter/internal/database"
	"github.com/starterkit/render-starter/internal/service"
	pkglogger "github.com/starterkit/render-starter/pkg/logger"
	pkgredis "github.com/starterkit/render-starter/pkg/redis"
)

// registerChecks adds a readiness check for every configured store. Stores
// are opened lazily so a store that is down at boot reports down on the
// probes and recovers once it comes back. The returned func releases them.
func registerChecks(cfg *config.Config, health *service.HealthService) func() {
	var closers []func()

	if cfg.Database.URL != "" {
		opts := database.DefaultOptions()
		opts.Lazy = true
		db, err := database.Open(cfg.Database, opts)
		if err != nil {
			pkglogger.Warn("Database unusable: %v", err)
			health.Register("database", failedCheck(err))
		} else {
			health.Register("database", service.DatabaseCheck(db))
			closers = append(closers, func() {
				if err := database.Close(db); err != nil {
					pkglogger.Warn("Closing database: %v", err)
				}
			})
		}
	}

	if cfg.Redis.URL != "" {
		client, err := pkgredis.NewClient(cfg.Redis.URL)
		if err != nil {
			pkglogger.Warn("Redis unusable: %v", err)
			health.Register("redis", failedCheck(err))
		} else {
			health.Register("redis", service.RedisCheck(client))
			closers = append(closers, func() { _ = client.Close() })
		}
	}

	return func() {
		for _, c := range closers {
			c()
		}
	}
}

// failedCheck reports a configuration error on every probe
func failedCheck(err error) service.Check {
	return func(context.Context) error {
		return fmt.Errorf("not configured: %w", err)
	}
}
