package enrich

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const (
	// Every outbound enrichment fetch is bounded by this. A preview
	// that takes longer than 5 seconds is a preview nobody is waiting
	// for anymore.
	fetchTimeout = 5 * time.Second

	// Descriptive agent so sites that block default client agents can
	// still decide to let us through.
	userAgent = "Mozilla/5.0 (compatible; Distractions/1.0)"

	// Limit response body size to prevent memory issues
	maxBodyBytes = 1024 * 1024
)

// OGData holds the Open Graph fields a card preview needs.
type OGData struct {
	Image string
	Title string
}

// OGFetcher scrapes og:image and og:title from arbitrary pages.
type OGFetcher struct {
	logger *slog.Logger
	client *http.Client
}

// NewOGFetcher creates an OG scraper with the standard fetch bound.
func NewOGFetcher(logger *slog.Logger) *OGFetcher {
	return &OGFetcher{
		logger: logger,
		client: &http.Client{Timeout: fetchTimeout},
	}
}

// Fetch returns whatever OG metadata the page exposes. Timeouts,
// network errors, non-2xx responses and unparsable HTML all come back
// as an empty result: a missing preview is not an error.
func (f *OGFetcher) Fetch(ctx context.Context, pageURL string) OGData {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return OGData{}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Debug("OG fetch failed", "url", pageURL, "error", err)
		return OGData{}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		f.logger.Debug("OG fetch non-success status", "url", pageURL, "status", resp.StatusCode)
		return OGData{}
	}

	return extractOG(io.LimitReader(resp.Body, maxBodyBytes))
}

// extractOG tokenizes HTML and keeps the first og:image and og:title
// it sees. The property may live in either a "property" or a "name"
// attribute, attribute order within the tag does not matter, and
// matching is case-insensitive. Later duplicates are ignored.
func extractOG(r io.Reader) OGData {
	var data OGData

	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or malformed markup; either way we keep what we have.
			return data

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if string(name) != "meta" || !hasAttr {
				continue
			}

			var property, content string
			for {
				key, val, more := z.TagAttr()
				switch strings.ToLower(string(key)) {
				case "property", "name":
					property = strings.ToLower(string(val))
				case "content":
					content = string(val)
				}
				if !more {
					break
				}
			}

			switch property {
			case "og:image":
				if data.Image == "" {
					data.Image = content
				}
			case "og:title":
				if data.Title == "" {
					data.Title = content
				}
			}

			if data.Image != "" && data.Title != "" {
				return data
			}
		}
	}
}
