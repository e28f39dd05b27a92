// Package brand maps domains to small logo images for card bylines,
// backed by a TTL cache so the upstream lookup API is hit at most once
// per domain per day.
package brand

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"distractions/internal/domain"
)

const defaultAPIBase = "https://api.brandfetch.io/v2/brands/"

const fetchTimeout = 5 * time.Second

// Resolver looks up brand logos by domain. The API key is optional:
// without one every lookup resolves to a cached absence and cards fall
// back to a generic icon.
type Resolver struct {
	logger  *slog.Logger
	client  *http.Client
	cache   domain.IconCache
	apiBase string
	apiKey  string
}

// brandResponse is the slice of the lookup API payload we rank. All
// fields optional; the payload is untrusted.
type brandResponse struct {
	Logos []brandLogo `json:"logos"`
}

type brandLogo struct {
	Type    string        `json:"type"`
	Formats []brandFormat `json:"formats"`
}

type brandFormat struct {
	Src    string `json:"src"`
	Format string `json:"format"`
}

// NewResolver creates a brand icon resolver over the given cache.
func NewResolver(logger *slog.Logger, cache domain.IconCache, apiKey string) *Resolver {
	return &Resolver{
		logger:  logger,
		client:  &http.Client{Timeout: fetchTimeout},
		cache:   cache,
		apiBase: defaultAPIBase,
		apiKey:  apiKey,
	}
}

// Resolve returns a logo URL for the domain, or "" when none is known.
// Lookup failures are cached as absence on purpose: for a cosmetic
// icon, callers cannot and do not need to tell "provider has no logo"
// from "lookup failed". Concurrent first lookups for one domain may
// both hit the upstream; the duplicate call is harmless and the second
// write wins.
func (r *Resolver) Resolve(ctx context.Context, rawDomain string) string {
	dom := domain.CanonicalBrandDomain(rawDomain)

	if entry, ok := r.cache.Get(ctx, dom); ok {
		return entry.Logo
	}

	logo := r.lookup(ctx, dom)
	r.cache.Put(ctx, dom, domain.IconEntry{Logo: logo, CachedAt: time.Now()})
	return logo
}

func (r *Resolver) lookup(ctx context.Context, dom string) string {
	if r.apiKey == "" {
		return ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.apiBase+dom, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Debug("brand lookup failed", "domain", dom, "error", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	var payload brandResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		r.logger.Debug("brand lookup decode failed", "domain", dom, "error", err)
		return ""
	}

	return bestLogo(payload.Logos)
}

// bestLogo ranks candidates: icon beats symbol beats logo, and the
// first candidate of the winning type with a vector format wins, png
// accepted as the raster fallback.
func bestLogo(logos []brandLogo) string {
	for _, wantType := range []string{"icon", "symbol", "logo"} {
		for _, logo := range logos {
			if logo.Type != wantType {
				continue
			}

			var png string
			for _, format := range logo.Formats {
				if format.Src == "" {
					continue
				}
				switch format.Format {
				case "svg":
					return format.Src
				case "png":
					if png == "" {
						png = format.Src
					}
				}
			}
			if png != "" {
				return png
			}
		}
	}
	return ""
}
