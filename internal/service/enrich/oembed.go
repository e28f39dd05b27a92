package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"distractions/internal/domain"
)

// Platform oEmbed endpoints. The query-parameter shape differs:
// YouTube selects JSON with format=json, Vimeo with a .json endpoint.
const (
	defaultYouTubeOEmbed = "https://www.youtube.com/oembed"
	defaultVimeoOEmbed   = "https://vimeo.com/api/oembed.json"
)

// VideoTitleFetcher fills in labels for bare video links via the
// platform oEmbed endpoints. It is only worth calling when the item
// has no already-known title.
type VideoTitleFetcher struct {
	logger          *slog.Logger
	client          *http.Client
	youtubeEndpoint string
	vimeoEndpoint   string
}

// oembedResponse is the subset of the oEmbed payload we read. Version
// is left untyped on purpose: the spec says "1.0" but some providers
// send numeric 1.0.
type oembedResponse struct {
	Title   string      `json:"title"`
	Version interface{} `json:"version"`
}

// NewVideoTitleFetcher creates a fetcher against the real platform
// endpoints.
func NewVideoTitleFetcher(logger *slog.Logger) *VideoTitleFetcher {
	return &VideoTitleFetcher{
		logger:          logger,
		client:          &http.Client{Timeout: fetchTimeout},
		youtubeEndpoint: defaultYouTubeOEmbed,
		vimeoEndpoint:   defaultVimeoOEmbed,
	}
}

// Fetch returns the provider's title for the video URL, or "" when the
// provider has none or cannot be reached in time.
func (f *VideoTitleFetcher) Fetch(ctx context.Context, platform, videoURL string) string {
	endpoint, err := f.endpointFor(platform, videoURL)
	if err != nil {
		f.logger.Debug("no oEmbed endpoint", "platform", platform, "error", err)
		return ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Debug("oEmbed fetch failed", "url", videoURL, "error", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	var payload oembedResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ""
	}
	return payload.Title
}

// endpointFor builds the provider-specific oEmbed request URL.
func (f *VideoTitleFetcher) endpointFor(platform, videoURL string) (string, error) {
	var base string
	switch platform {
	case domain.PlatformYouTube:
		base = f.youtubeEndpoint
	case domain.PlatformVimeo:
		base = f.vimeoEndpoint
	default:
		return "", fmt.Errorf("platform %q has no oEmbed endpoint", platform)
	}

	endpoint, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint URL: %w", err)
	}

	query := endpoint.Query()
	query.Set("url", videoURL)
	if platform == domain.PlatformYouTube {
		query.Set("format", "json")
	}
	endpoint.RawQuery = query.Encode()

	return endpoint.String(), nil
}
