package http

import (
	"log/slog"
	"net/http"

	"distractions/internal/domain"
	"distractions/internal/http/handlers"
	"distractions/internal/http/middleware"
)

type Router struct {
	mux            *http.ServeMux
	healthHandler  *handlers.HealthHandler
	enrichHandler  *handlers.EnrichHandler
	feedHandler    *handlers.FeedHandler
	curatedHandler *handlers.CuratedHandler
	inboxHandler   *handlers.InboxHandler
}

func NewRouter(logger *slog.Logger, previewer handlers.Previewer, logos handlers.LogoResolver, feedStore domain.DistractionStore, curatedStore domain.CuratedStore, inboxStore domain.InboxStore) *Router {
	mux := http.NewServeMux()

	return &Router{
		mux:            mux,
		healthHandler:  handlers.NewHealthHandler(logger),
		enrichHandler:  handlers.NewEnrichHandler(logger, previewer, logos),
		feedHandler:    handlers.NewFeedHandler(logger, feedStore),
		curatedHandler: handlers.NewCuratedHandler(logger, curatedStore),
		inboxHandler:   handlers.NewInboxHandler(logger, inboxStore),
	}
}

func (r *Router) SetupRoutes() http.Handler {
	// Health check
	r.mux.HandleFunc("GET /health", r.healthHandler.HandleHealth)

	// Enrichment endpoints, mounted at the root for the feed client
	r.mux.HandleFunc("GET /preview", r.enrichHandler.GetPreview)
	r.mux.HandleFunc("GET /video-title", r.enrichHandler.GetVideoTitle)
	r.mux.HandleFunc("GET /brand-logo", r.enrichHandler.GetBrandLogo)

	// API v1 routes - Feed
	r.mux.HandleFunc("GET /api/v1/feed", r.feedHandler.GetFeed)
	r.mux.HandleFunc("POST /api/v1/feed/archive", r.feedHandler.ArchiveItem)
	r.mux.HandleFunc("POST /api/v1/feed/hide", r.feedHandler.HideItem)
	r.mux.HandleFunc("POST /api/v1/feed/delete", r.feedHandler.DeleteItem)

	// API v1 routes - Curated picks
	r.mux.HandleFunc("GET /api/v1/curated", r.curatedHandler.GetCurated)

	// API v1 routes - Inbox triage
	r.mux.HandleFunc("GET /api/v1/inbox", r.inboxHandler.GetInbox)
	r.mux.HandleFunc("POST /api/v1/inbox/action", r.inboxHandler.RouteItem)
	r.mux.HandleFunc("POST /api/v1/inbox/delete", r.inboxHandler.DeleteItem)

	// Add CORS and request-ID middleware
	return middleware.CORS(middleware.RequestID(r.mux))
}
