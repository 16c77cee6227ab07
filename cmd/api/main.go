package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"taskpulse/config"
	_ "taskpulse/docs" // Swagger docs
	"taskpulse/internal/httpserver"
	"taskpulse/internal/insight/usecase"
	"taskpulse/internal/middleware"
	"taskpulse/internal/taskstore/rest"
	"taskpulse/pkg/daterange"
	"taskpulse/pkg/log"
)

// @title       Taskpulse API
// @description Date-range resolution and task status insights over an upstream task API.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting taskpulse...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Upstream task API: %s", cfg.Upstream.URL)

	// 3. Date range resolver
	resolver, err := daterange.NewResolver(cfg.Insight.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Insight.Timezone, err)
		resolver, _ = daterange.NewResolver("UTC")
	}

	// 4. Insight domain: repository -> usecase
	taskRepo := rest.New(cfg.Upstream.URL, cfg.Upstream.AccessToken, cfg.Upstream.Timeout, logger)
	insightUC := usecase.New(logger, taskRepo, resolver, usecase.Config{
		SnapshotSize: cfg.Insight.SnapshotSize,
		SnapshotTTL:  cfg.Insight.SnapshotTTL,
	})

	// 5. Middleware
	mw := middleware.New(logger, middleware.Config{
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		RateLimitBurst:  cfg.HTTPServer.RateLimitBurst,
	})

	// 6. HTTP Server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		InsightUC:   insightUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
