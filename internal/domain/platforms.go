package domain

import "strings"

// Platform constants - single source of truth
const (
	PlatformYouTube    = "youtube"
	PlatformVimeo      = "vimeo"
	PlatformX          = "x"
	PlatformSpotify    = "spotify"
	PlatformAppleMusic = "apple_music"
)

// Platform describes a recognized content platform: the hostnames it
// serves from, the canonical domain used for brand icon lookups, and
// the label to show when no richer title is available.
type Platform struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Hosts       []string `json:"hosts"`
	BrandDomain string   `json:"brand_domain"`
}

// PlatformConfig holds all platform configurations
type PlatformConfig struct {
	Platforms map[string]Platform `json:"platforms"`
}

// GetPlatformConfig returns the centralized platform configuration.
// The classifier and the brand icon resolver both derive from this so
// the per-domain icon/label mapping cannot drift from classification.
func GetPlatformConfig() PlatformConfig {
	return PlatformConfig{
		Platforms: map[string]Platform{
			PlatformYouTube: {
				ID:          PlatformYouTube,
				Name:        "YouTube",
				Hosts:       []string{"youtube.com", "m.youtube.com", "youtu.be"},
				BrandDomain: "youtube.com",
			},
			PlatformVimeo: {
				ID:          PlatformVimeo,
				Name:        "Vimeo",
				Hosts:       []string{"vimeo.com", "player.vimeo.com"},
				BrandDomain: "vimeo.com",
			},
			PlatformX: {
				ID:          PlatformX,
				Name:        "X",
				Hosts:       []string{"x.com", "twitter.com"},
				BrandDomain: "x.com",
			},
			PlatformSpotify: {
				ID:          PlatformSpotify,
				Name:        "Spotify",
				Hosts:       []string{"open.spotify.com", "spotify.com"},
				BrandDomain: "spotify.com",
			},
			PlatformAppleMusic: {
				ID:          PlatformAppleMusic,
				Name:        "Apple Music",
				Hosts:       []string{"music.apple.com"},
				BrandDomain: "apple.com",
			},
		},
	}
}

// DetectPlatformFromHost returns the platform ID for a hostname, or ""
// when the host belongs to no recognized platform. The host is matched
// with its www. prefix stripped.
func DetectPlatformFromHost(host string) string {
	host = strings.TrimPrefix(strings.ToLower(host), "www.")
	for id, platform := range GetPlatformConfig().Platforms {
		for _, h := range platform.Hosts {
			if host == h {
				return id
			}
		}
	}
	return ""
}

// CanonicalBrandDomain collapses platform host aliases to the one
// domain used for logo lookups (twitter.com and x.com are the same
// brand). Unrecognized domains pass through unchanged.
func CanonicalBrandDomain(domain string) string {
	domain = strings.TrimPrefix(strings.ToLower(domain), "www.")
	if id := DetectPlatformFromHost(domain); id != "" {
		return GetPlatformConfig().Platforms[id].BrandDomain
	}
	return domain
}

// PlatformName returns the display label for a platform ID.
func PlatformName(id string) string {
	if p, ok := GetPlatformConfig().Platforms[id]; ok {
		return p.Name
	}
	return ""
}
