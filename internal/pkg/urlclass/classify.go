package urlclass

import (
	"net/url"
	"regexp"
	"strings"

	"distractions/internal/domain"
)

var (
	// YouTube video ids are 11 characters across every URL shape the
	// platform hands out: watch links, short links, embeds, shorts.
	youtubeIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([a-zA-Z0-9_-]{11})`),
		regexp.MustCompile(`youtube\.com/shorts/([a-zA-Z0-9_-]{11})`),
	}
	vimeoIDPattern = regexp.MustCompile(`vimeo\.com/(\d+)`)
	postIDPattern  = regexp.MustCompile(`/status/(\d+)`)
)

// YouTubeID extracts the video id from any known YouTube URL shape.
// Returns "" when none match.
func YouTubeID(rawURL string) string {
	for _, pattern := range youtubeIDPatterns {
		if m := pattern.FindStringSubmatch(rawURL); m != nil {
			return m[1]
		}
	}
	return ""
}

// VimeoID extracts the numeric video id from a Vimeo URL, or "".
func VimeoID(rawURL string) string {
	if m := vimeoIDPattern.FindStringSubmatch(rawURL); m != nil {
		return m[1]
	}
	return ""
}

// Classify maps a URL to its content classification. It is total and
// deterministic: malformed input and unrecognized hosts both come back
// as a plain website with no id, never an error.
func Classify(rawURL string) domain.Classification {
	website := domain.Classification{Kind: domain.KindWebsite}

	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return website
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")

	// A platform host whose path doesn't match any sub-rule falls
	// through to website rather than guessing.
	switch domain.DetectPlatformFromHost(host) {
	case domain.PlatformYouTube:
		if id := YouTubeID(rawURL); id != "" {
			return domain.Classification{Kind: domain.KindVideo, Platform: domain.PlatformYouTube, ID: id}
		}

	case domain.PlatformVimeo:
		if id := VimeoID(rawURL); id != "" {
			return domain.Classification{Kind: domain.KindVideo, Platform: domain.PlatformVimeo, ID: id}
		}

	case domain.PlatformX:
		if m := postIDPattern.FindStringSubmatch(u.Path); m != nil {
			return domain.Classification{Kind: domain.KindSocialPost, Platform: domain.PlatformX, ID: m[1]}
		}
		return domain.Classification{Kind: domain.KindSocialProfile, Platform: domain.PlatformX}

	case domain.PlatformSpotify:
		segments := splitPath(u.Path)
		if len(segments) >= 2 {
			switch segments[0] {
			case "track":
				return domain.Classification{Kind: domain.KindMusicTrack, Platform: domain.PlatformSpotify, ID: segments[1]}
			case "album":
				return domain.Classification{Kind: domain.KindMusicAlbum, Platform: domain.PlatformSpotify, ID: segments[1]}
			}
		}

	case domain.PlatformAppleMusic:
		if c, ok := classifyAppleMusic(u); ok {
			return c
		}
	}

	return website
}

// classifyAppleMusic handles Apple Music's path conventions: an album
// link with an ?i= query is a single track, /song/ paths are tracks,
// plain /album/ paths are albums.
func classifyAppleMusic(u *url.URL) (domain.Classification, bool) {
	segments := splitPath(u.Path)
	for i, segment := range segments {
		switch segment {
		case "album":
			if trackID := u.Query().Get("i"); trackID != "" {
				return domain.Classification{Kind: domain.KindMusicTrack, Platform: domain.PlatformAppleMusic, ID: trackID}, true
			}
			if i+1 < len(segments) {
				return domain.Classification{Kind: domain.KindMusicAlbum, Platform: domain.PlatformAppleMusic, ID: segments[len(segments)-1]}, true
			}
		case "song":
			if i+1 < len(segments) {
				return domain.Classification{Kind: domain.KindMusicTrack, Platform: domain.PlatformAppleMusic, ID: segments[len(segments)-1]}, true
			}
		}
	}
	return domain.Classification{}, false
}

func splitPath(path string) []string {
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
