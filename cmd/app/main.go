package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "kizuna/docs"
	"kizuna/internal/api/v1/router"
	"kizuna/internal/config"
	"kizuna/internal/logger"
	"kizuna/internal/scheduler"
	"kizuna/internal/service"

	"github.com/joho/godotenv"
)

// @title Kizuna API
// @version 1.0
// @description Kizuna language school site API
// @host localhost:8080
// @BasePath /v1
// @Schemes http https

func main() {
	// 1. Load configuration
	envErr := godotenv.Load()
	logger := logger.New()
	if envErr != nil {
		logger.Warn().Msg("Warning: no .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Msgf("Error loading config: %v", err)
	}

	ctx := context.Background()
	if cfg.HasSecretRefs() {
		secrets, err := service.NewSecretManagerService(ctx, cfg.GCPProjectID)
		if err != nil {
			logger.Fatal().Msgf("Failed to create Secret Manager client: %v", err)
		}
		if err := cfg.ResolveSecrets(ctx, secrets); err != nil {
			logger.Fatal().Msgf("Failed to resolve secrets: %v", err)
		}
		_ = secrets.Close()
		logger.Info().Msg("Secrets resolved from Secret Manager")
	}

	// 2. Build router (and get DB connection)
	app, err := router.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Msgf("Failed to build router: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to release resources")
		}
	}()

	// 3. Keepalive schedule
	keepalive := scheduler.NewKeepaliveScheduler(app.Health, cfg.KeepaliveCron, logger)
	if err := keepalive.Start(); err != nil {
		logger.Fatal().Msgf("Failed to start keepalive scheduler: %v", err)
	}

	// 4. Contact outbox, when submissions are queued
	outboxCtx, stopOutbox := context.WithCancel(context.Background())
	outboxDone := make(chan struct{})
	if app.Outbox != nil {
		go func() {
			defer close(outboxDone)
			_ = app.Outbox.Run(outboxCtx)
		}()
	} else {
		close(outboxDone)
	}

	// 5. Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      app.Handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	// Session event streams stay open until the server shuts down.
	streamsCtx, stopStreams := context.WithCancel(context.Background())
	srv.BaseContext = func(net.Listener) context.Context { return streamsCtx }
	srv.RegisterOnShutdown(stopStreams)

	// 6. Start server in a goroutine
	go func() {
		logger.Info().Msgf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Msgf("Listen: %s", err)
		}
	}()

	// 7. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("Shutdown signal received, exiting...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Msgf("Server forced to shutdown: %v", err)
	}
	keepalive.Stop()
	stopOutbox()
	<-outboxDone
	logger.Info().Msg("Server shut down gracefully")
}
