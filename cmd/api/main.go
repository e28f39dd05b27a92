package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"distractions/internal/config"
	"distractions/internal/domain"
	"distractions/internal/pkg/logger"
	"distractions/internal/repository/baserow"
	"distractions/internal/repository/coda"
	"distractions/internal/repository/iconcache"
	"distractions/internal/service/api"
	"distractions/internal/service/brand"
	"distractions/internal/service/enrich"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Validate API-specific configuration
	if err := cfg.ValidateForAPI(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	// Setup logging
	log := logger.New(cfg.LogLevel)
	log.Info("Starting API service...")

	tableID, err := strconv.Atoi(cfg.BaserowTableID)
	if err != nil {
		log.Error("Invalid BASEROW_TABLE_ID", "value", cfg.BaserowTableID, "error", err)
		os.Exit(1)
	}

	// Icon cache: Redis when configured, in-process otherwise
	var cache domain.IconCache
	if cfg.RedisURL != "" {
		redisClient, err := iconcache.NewRedisClient(cfg.RedisURL, log)
		if err != nil {
			log.Error("Failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		cache = iconcache.NewRedis(redisClient, iconcache.DefaultTTL, log)
		log.Info("Using Redis icon cache")
	} else {
		cache = iconcache.NewMemory(iconcache.DefaultTTL)
		log.Info("Using in-memory icon cache")
	}

	// Create services and store clients
	enrichService := enrich.New(log)
	brandResolver := brand.NewResolver(log, cache, cfg.BrandfetchAPIKey)
	feedStore := baserow.New(cfg.BaserowToken, tableID, log)
	codaClient := coda.New(cfg.CodaToken, cfg.CodaDocID, cfg.CodaCuratedTable, cfg.CodaInboxTable, log)

	// Create API service
	apiService, err := api.New(cfg, log, enrichService, brandResolver, feedStore, codaClient.Curated(), codaClient.Inbox())
	if err != nil {
		log.Error("Failed to create API service", "error", err)
		os.Exit(1)
	}

	// Create a channel to track shutdown completion
	done := make(chan struct{})

	// Start API service in a goroutine
	go func() {
		defer close(done)
		if err := apiService.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("API service failed", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Wait for either shutdown signal or service completion
	select {
	case <-quit:
		log.Info("Shutdown signal received, stopping API service...")
	case <-done:
		log.Info("API service completed")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Stop API service
	if err := apiService.Stop(ctx); err != nil {
		log.Error("Error stopping API service", "error", err)
	}

	log.Info("API service shutdown complete")
}
