package domain

import "time"

// Kind is the content-type tag assigned to a URL by classification.
type Kind string

const (
	KindVideo         Kind = "video"
	KindSocialPost    Kind = "social-post"
	KindSocialProfile Kind = "social-profile"
	KindMusicTrack    Kind = "music-track"
	KindMusicAlbum    Kind = "music-album"
	KindWebsite       Kind = "website"
)

// LinkTarget is a feed item's raw link plus an optional pre-supplied
// display name. Immutable once created.
type LinkTarget struct {
	URL  string `json:"url"`
	Name string `json:"name,omitempty"`
}

// Classification is the derived content type of a URL. ID is the
// platform-specific identifier (video id, post id, track id) when one
// applies; empty otherwise.
type Classification struct {
	Kind     Kind   `json:"kind"`
	Platform string `json:"platform,omitempty"`
	ID       string `json:"id,omitempty"`
}

// Embed is a directly renderable inline player derived from a video
// classification with no network call. ThumbnailURL is empty for
// platforms without a stable thumbnail CDN convention.
type Embed struct {
	EmbedURL     string `json:"embed_url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// Preview is the outcome of metadata enrichment for one link. Empty
// fields mean the upstream had nothing, or could not be reached within
// the fetch bound; the two cases are deliberately indistinguishable.
type Preview struct {
	Image      string    `json:"image,omitempty"`
	Title      string    `json:"title,omitempty"`
	ResolvedAt time.Time `json:"resolved_at"`
}
