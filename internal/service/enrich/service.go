// Package enrich resolves display metadata for feed links: Open Graph
// scraping for ordinary pages, a mirror API for social posts, oEmbed
// for bare video titles. Every upstream is best effort and bounded;
// a failed lookup is an empty preview, never an error.
package enrich

import (
	"context"
	"log/slog"
	"time"

	"distractions/internal/domain"
	"distractions/internal/pkg/titles"
	"distractions/internal/pkg/urlclass"
)

// Service dispatches each URL to the right upstream and post-processes
// the result.
type Service struct {
	logger *slog.Logger
	og     *OGFetcher
	social *SocialResolver
	video  *VideoTitleFetcher
}

// New creates the enrichment service with all fetchers against their
// real upstreams.
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
		og:     NewOGFetcher(logger),
		social: NewSocialResolver(logger),
		video:  NewVideoTitleFetcher(logger),
	}
}

// Preview resolves display metadata for one link. Social URLs go to
// the mirror API, everything else gets a plain OG scrape; the result's
// image is normalized and its title entity-decoded. A pre-supplied
// display name fills in when the upstream has no title.
func (s *Service) Preview(ctx context.Context, target domain.LinkTarget) domain.Preview {
	c := urlclass.Classify(target.URL)

	var data OGData
	switch c.Kind {
	case domain.KindSocialPost, domain.KindSocialProfile:
		data = s.social.Resolve(ctx, target.URL)
	default:
		data = s.og.Fetch(ctx, target.URL)
	}

	title := titles.Decode(data.Title)
	if title == "" {
		title = target.Name
	}

	return domain.Preview{
		Image:      NormalizeImage(data.Image),
		Title:      title,
		ResolvedAt: time.Now(),
	}
}

// VideoTitle fills in a missing label for a bare video link via the
// platform's oEmbed endpoint.
func (s *Service) VideoTitle(ctx context.Context, platform, videoURL string) string {
	return s.video.Fetch(ctx, platform, videoURL)
}
