// Command api is the Riftscout HTTP server.
//
// Usage:
//
//	RIOT_API_KEY=... riftscout-api
//	API_PORT=8080 DATABASE_URL=postgres://... riftscout-api

// @title Riftscout API
// @version 1.0.0
// @description Scouts a League of Legends player by Riot ID: the live game with each opponent's recent record, or the latest completed match. Every request is computed fresh from the Riot API.
// @host localhost:8000
// @BasePath /
// @schemes http https
// @contact.name Riftscout
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/albapepper/riftscout/internal/api"
	"github.com/albapepper/riftscout/internal/api/handler"
	"github.com/albapepper/riftscout/internal/audit"
	"github.com/albapepper/riftscout/internal/config"
	"github.com/albapepper/riftscout/internal/db"
	"github.com/albapepper/riftscout/internal/ddragon"
	"github.com/albapepper/riftscout/internal/discord"
	"github.com/albapepper/riftscout/internal/maintenance"
	"github.com/albapepper/riftscout/internal/riot"
	"github.com/albapepper/riftscout/internal/scout"
	"github.com/albapepper/riftscout/internal/telemetry"

	_ "github.com/albapepper/riftscout/docs" // swagger docs
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Debug {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
		slog.SetDefault(logger)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Tracing
	shutdownTracing, err := telemetry.Setup(ctx, "riftscout-api", cfg.OTelEndpoint, cfg.OTelEnabled && cfg.OTelEndpoint != "")
	if err != nil {
		logger.Error("Failed to set up tracing", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("Tracing shutdown error", "error", err)
		}
	}()

	// Riot API client
	riotClient := riot.NewClient(cfg.RiotAPIKey,
		riot.WithRegionalURL(cfg.RiotRegionalURL),
		riot.WithPlatformURL(cfg.RiotPlatformURL),
		riot.WithRateLimit(cfg.RiotRequestsPerSecond, cfg.RiotBurst),
		riot.WithLogger(logger),
	)

	// Static content version
	assets := ddragon.NewStore(cfg.DDragonURL, cfg.ContentVersionFallback)
	maintenance.WarmUp(ctx, assets, 5*time.Second, logger)

	scouter := scout.New(riotClient, assets, scout.Options{
		MatchCount:             cfg.ScoutMatchCount,
		MaxConcurrentOpponents: cfg.ScoutMaxConcurrentOpponents,
		Logger:                 logger,
	})

	deps := handler.Deps{
		Scout:    scouter,
		Versions: assets,
		Logger:   logger,
	}

	// Audit database (optional)
	var purger maintenance.AuditPurger
	if cfg.AuditEnabled() {
		logger.Info("Connecting to database...")
		pool, err := db.New(ctx, cfg)
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		logger.Info("Database connected",
			"min_conns", cfg.DBPoolMinConns,
			"max_conns", cfg.DBPoolMaxConns)

		auditStore := audit.New(pool.Pool, logger)
		deps.DB = pool
		deps.Audit = auditStore
		purger = auditStore
	} else {
		logger.Info("Audit log disabled (no DATABASE_URL)")
	}

	// Discord delivery (optional)
	if cfg.DiscordWebhookURL != "" {
		deps.Webhook = discord.NewWebhookClient(cfg.DiscordWebhookURL)
		logger.Info("Discord webhook configured")
	}

	// Maintenance tickers (version refresh, audit purge)
	mcfg := maintenance.DefaultConfig()
	mcfg.VersionRefreshInterval = cfg.VersionRefreshInterval
	mcfg.AuditRetention = cfg.AuditRetention
	go maintenance.Start(ctx, assets, purger, mcfg, logger)

	router := api.NewRouter(deps, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.ScoutTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting Riftscout API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
