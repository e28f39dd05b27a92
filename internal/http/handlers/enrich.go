package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"distractions/internal/domain"
)

// Previewer resolves display metadata for a link.
type Previewer interface {
	Preview(ctx context.Context, target domain.LinkTarget) domain.Preview
	VideoTitle(ctx context.Context, platform, videoURL string) string
}

// LogoResolver resolves a brand icon URL for a domain.
type LogoResolver interface {
	Resolve(ctx context.Context, rawDomain string) string
}

type EnrichHandler struct {
	logger    *slog.Logger
	previewer Previewer
	logos     LogoResolver
}

// PreviewResponse mirrors the preview result. Both fields are null
// when the upstream had nothing, never the empty string.
type PreviewResponse struct {
	Image *string `json:"image"`
	Title *string `json:"title"`
}

type VideoTitleResponse struct {
	Title *string `json:"title"`
}

type BrandLogoResponse struct {
	Logo *string `json:"logo"`
}

func NewEnrichHandler(logger *slog.Logger, previewer Previewer, logos LogoResolver) *EnrichHandler {
	return &EnrichHandler{
		logger:    logger,
		previewer: previewer,
		logos:     logos,
	}
}

// writeJSONResponse writes a JSON response to the ResponseWriter
func (h *EnrichHandler) writeJSONResponse(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// nullable maps the empty string to JSON null.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// GetPreview resolves a link preview. Upstream failures are not
// errors: the response is 200 with null fields.
func (h *EnrichHandler) GetPreview(w http.ResponseWriter, r *http.Request) {
	rawURL := r.URL.Query().Get("url")
	if rawURL == "" {
		http.Error(w, "url parameter is required", http.StatusBadRequest)
		return
	}

	target := domain.LinkTarget{
		URL:  rawURL,
		Name: r.URL.Query().Get("name"),
	}
	preview := h.previewer.Preview(r.Context(), target)
	h.logger.Info("Resolved preview", "url", rawURL, "has_image", preview.Image != "", "has_title", preview.Title != "")
	h.writeJSONResponse(w, PreviewResponse{
		Image: nullable(preview.Image),
		Title: nullable(preview.Title),
	})
}

// GetVideoTitle fetches the title of a video via its platform's oEmbed
// endpoint. The type parameter selects the platform.
func (h *EnrichHandler) GetVideoTitle(w http.ResponseWriter, r *http.Request) {
	rawURL := r.URL.Query().Get("url")
	if rawURL == "" {
		http.Error(w, "url parameter is required", http.StatusBadRequest)
		return
	}

	var platform string
	switch r.URL.Query().Get("type") {
	case "youtube":
		platform = domain.PlatformYouTube
	case "vimeo":
		platform = domain.PlatformVimeo
	default:
		http.Error(w, "type parameter must be youtube or vimeo", http.StatusBadRequest)
		return
	}

	title := h.previewer.VideoTitle(r.Context(), platform, rawURL)
	h.writeJSONResponse(w, VideoTitleResponse{Title: nullable(title)})
}

// GetBrandLogo resolves a brand icon for a domain. A domain with no
// discoverable icon is a 200 with a null logo.
func (h *EnrichHandler) GetBrandLogo(w http.ResponseWriter, r *http.Request) {
	dom := r.URL.Query().Get("domain")
	if dom == "" {
		http.Error(w, "domain parameter is required", http.StatusBadRequest)
		return
	}

	logo := h.logos.Resolve(r.Context(), dom)
	h.writeJSONResponse(w, BrandLogoResponse{Logo: nullable(logo)})
}
