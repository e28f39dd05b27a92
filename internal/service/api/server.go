// Package api hosts the HTTP server for the feed, inbox and
// link-enrichment endpoints.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"distractions/internal/config"
	"distractions/internal/domain"
	internalhttp "distractions/internal/http"
	"distractions/internal/http/handlers"
)

// APIService handles HTTP API requests
type APIService struct {
	config *config.Config
	logger *slog.Logger

	// HTTP server
	server *http.Server
}

// New creates a new API service
func New(
	config *config.Config,
	logger *slog.Logger,
	previewer handlers.Previewer,
	logos handlers.LogoResolver,
	feedStore domain.DistractionStore,
	curatedStore domain.CuratedStore,
	inboxStore domain.InboxStore,
) (*APIService, error) {
	router := internalhttp.NewRouter(logger, previewer, logos, feedStore, curatedStore, inboxStore)

	apiService := &APIService{
		config: config,
		logger: logger,
	}

	apiService.server = &http.Server{
		Addr:         ":" + config.Port,
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return apiService, nil
}

// Start begins serving the API
func (s *APIService) Start() error {
	s.logger.Info("Starting API server", "port", s.config.Port)
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the API server
func (s *APIService) Stop(ctx context.Context) error {
	s.logger.Info("Stopping API server...")
	return s.server.Shutdown(ctx)
}
