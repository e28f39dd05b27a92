package urlclass

import "distractions/internal/domain"

// ResolveEmbed derives an embeddable player URL for a video
// classification. Pure, no network. YouTube thumbnails come from the
// stable img.youtube.com CDN convention; Vimeo has no equivalent, so
// its thumbnail is left empty rather than spending a network call on a
// preview image when an inline player is already being embedded.
func ResolveEmbed(c domain.Classification) (domain.Embed, bool) {
	if c.Kind != domain.KindVideo || c.ID == "" {
		return domain.Embed{}, false
	}

	switch c.Platform {
	case domain.PlatformYouTube:
		return domain.Embed{
			EmbedURL:     "https://www.youtube.com/embed/" + c.ID,
			ThumbnailURL: "https://img.youtube.com/vi/" + c.ID + "/hqdefault.jpg",
		}, true
	case domain.PlatformVimeo:
		return domain.Embed{
			EmbedURL: "https://player.vimeo.com/video/" + c.ID,
		}, true
	}

	return domain.Embed{}, false
}
