package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"voice-intent/config"
	_ "voice-intent/docs" // Swagger docs
	assistantHTTP "voice-intent/internal/assistant/delivery/http"
	"voice-intent/internal/app"
	"voice-intent/internal/httpserver"
	"voice-intent/internal/middleware"
	"voice-intent/pkg/log"
)

// @title       Voice Intent API
// @description Intent recognition for a voice assistant: classify utterances, dispatch functions and answer from context.
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

	logger.Info(ctx, "Starting Voice Intent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Domain
	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize application: ", err)
		return
	}
	defer func() {
		if err := application.Close(); err != nil {
			logger.Warnf(ctx, "Failed to close application: %v", err)
		}
	}()

	// 4. Music catalog refresh
	if cfg.Music.Watch {
		go func() {
			if err := application.Catalog.Watch(ctx); err != nil {
				logger.Warnf(ctx, "Music watcher stopped: %v", err)
			}
		}()
	}

	// 5. HTTP Server
	mw := middleware.New(logger, cfg.RateLimit.PerMin)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       mw,
		AssistantHandler: assistantHTTP.New(logger, application.Assistant),
		Readiness: []httpserver.ReadinessCheck{
			{Name: "cache", Check: application.CachePing},
		},
		Stats: application.Stats,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
