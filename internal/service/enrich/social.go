package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

// defaultSocialAPIBase is the FxTwitter-style mirror API: it serves
// post and profile data for X URLs by path, no credentials required.
const defaultSocialAPIBase = "https://api.fxtwitter.com"

const maxPostTextLen = 100

var handlePattern = regexp.MustCompile(`^/([^/?#]+)`)

// SocialResolver produces previews for X posts and profiles. The
// mirror API is a third-party convenience that can itself fail or
// rate-limit, so every failure path falls back to a title derived from
// the URL alone, which cannot fail and never blocks.
type SocialResolver struct {
	logger  *slog.Logger
	client  *http.Client
	apiBase string
}

// fxResponse mirrors the subset of the mirror API payload a preview
// needs. Every field is optional; the payload is untrusted and absent
// fields decode to zero values.
type fxResponse struct {
	Code int     `json:"code"`
	Post *fxPost `json:"tweet"`
	User *fxUser `json:"user"`
}

type fxPost struct {
	Text   string   `json:"text"`
	Author *fxUser  `json:"author"`
	Media  *fxMedia `json:"media"`
}

type fxMedia struct {
	Photos []fxPhoto `json:"photos"`
	Videos []fxVideo `json:"videos"`
}

type fxPhoto struct {
	URL string `json:"url"`
}

type fxVideo struct {
	ThumbnailURL string `json:"thumbnail_url"`
}

type fxUser struct {
	Name       string `json:"name"`
	ScreenName string `json:"screen_name"`
	AvatarURL  string `json:"avatar_url"`
	BannerURL  string `json:"banner_url"`
}

// NewSocialResolver creates a resolver against the public mirror API.
func NewSocialResolver(logger *slog.Logger) *SocialResolver {
	return &SocialResolver{
		logger:  logger,
		client:  &http.Client{Timeout: fetchTimeout},
		apiBase: defaultSocialAPIBase,
	}
}

// Resolve returns a preview for an X post or profile URL. Never fails:
// the worst case is a bare network-name title with no image.
func (r *SocialResolver) Resolve(ctx context.Context, postURL string) OGData {
	if data, ok := r.fromAPI(ctx, postURL); ok {
		return data
	}
	return fallbackFromURL(postURL)
}

// fromAPI queries the mirror, which accepts the original URL's path
// verbatim. Any transport error, non-200 outer status, or non-200
// inner code means the caller should fall back.
func (r *SocialResolver) fromAPI(ctx context.Context, postURL string) (OGData, bool) {
	u, err := url.Parse(postURL)
	if err != nil || u.Path == "" || u.Path == "/" {
		return OGData{}, false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.apiBase+u.Path, nil)
	if err != nil {
		return OGData{}, false
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Debug("social preview fetch failed", "url", postURL, "error", err)
		return OGData{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return OGData{}, false
	}

	var payload fxResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		r.logger.Debug("social preview decode failed", "url", postURL, "error", err)
		return OGData{}, false
	}
	if payload.Code != http.StatusOK {
		return OGData{}, false
	}

	switch {
	case payload.Post != nil:
		return postPreview(payload.Post), true
	case payload.User != nil:
		return profilePreview(payload.User), true
	}
	return OGData{}, false
}

// postPreview formats a post as `author: "text"`, preferring an
// attached photo, then a video thumbnail, then the author avatar.
func postPreview(post *fxPost) OGData {
	author := "X"
	var image string
	if post.Author != nil {
		if post.Author.Name != "" {
			author = post.Author.Name
		}
		image = post.Author.AvatarURL
	}
	if post.Media != nil {
		if len(post.Media.Videos) > 0 && post.Media.Videos[0].ThumbnailURL != "" {
			image = post.Media.Videos[0].ThumbnailURL
		}
		if len(post.Media.Photos) > 0 && post.Media.Photos[0].URL != "" {
			image = post.Media.Photos[0].URL
		}
	}

	text := post.Text
	if runes := []rune(text); len(runes) > maxPostTextLen {
		text = string(runes[:maxPostTextLen]) + "..."
	}

	return OGData{
		Title: fmt.Sprintf("%s: \"%s\"", author, text),
		Image: image,
	}
}

func profilePreview(user *fxUser) OGData {
	image := user.BannerURL
	if image == "" {
		image = user.AvatarURL
	}
	return OGData{
		Title: fmt.Sprintf("@%s on X", user.ScreenName),
		Image: image,
	}
}

// fallbackFromURL pulls the handle out of the URL path's first
// segment. A URL shape without even a handle yields the literal
// network name.
func fallbackFromURL(postURL string) OGData {
	u, err := url.Parse(postURL)
	if err == nil {
		if m := handlePattern.FindStringSubmatch(u.Path); m != nil {
			handle := strings.TrimSpace(m[1])
			if handle != "" {
				return OGData{Title: fmt.Sprintf("@%s on X", handle)}
			}
		}
	}
	return OGData{Title: "X"}
}
