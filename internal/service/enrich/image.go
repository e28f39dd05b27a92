package enrich

import (
	"net/url"
	"regexp"
	"strings"
)

// Apple's artwork CDN encodes the crop size in the final path segment,
// e.g. .../1200x630bf-60.jpg. The social-card crop renders badly in a
// square feed tile, so it is rewritten to the 600x600 variant. The
// suffix and query string carry quality parameters and must survive.
var artworkSizePattern = regexp.MustCompile(`/\d+x\d+([^/]*)$`)

const squareArtworkSize = "600x600"

// NormalizeImage rewrites known awkward preview image shapes. Only
// Apple Music artwork is currently rewritten; every other URL passes
// through untouched.
func NormalizeImage(imageURL string) string {
	u, err := url.Parse(imageURL)
	if err != nil {
		return imageURL
	}

	host := strings.ToLower(u.Hostname())
	if host != "mzstatic.com" && !strings.HasSuffix(host, ".mzstatic.com") {
		return imageURL
	}
	if !artworkSizePattern.MatchString(u.Path) {
		return imageURL
	}

	u.Path = artworkSizePattern.ReplaceAllString(u.Path, "/"+squareArtworkSize+"$1")
	return u.String()
}
