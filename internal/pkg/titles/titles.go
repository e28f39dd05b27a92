// Package titles turns raw metadata and bare URLs into something a
// human can read on a feed card.
package titles

import (
	"net/url"
	"regexp"
	"strings"

	"distractions/internal/domain"
)

// The enumerated entity set. Anything outside it passes through
// unchanged: there is deliberately no generic numeric-character-
// reference decoding, which is a documented limitation.
var entities = map[string]string{
	"&amp;":  "&",
	"&lt;":   "<",
	"&gt;":   ">",
	"&quot;": `"`,
	"&#39;":  "'",
	"&apos;": "'",
	"&nbsp;": " ",
	"&#x27;": "'",
	"&#x2F;": "/",
	"&ndash;": "–",
	"&mdash;": "—",
}

var (
	entityPattern  = regexp.MustCompile(`&[#\w]+;`)
	numericPattern = regexp.MustCompile(`^\d+$`)
	opaquePattern  = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	extPattern     = regexp.MustCompile(`\.[^.]+$`)
)

// Decode replaces known HTML entities in scraped titles. Unknown
// entities are left as-is.
func Decode(text string) string {
	return entityPattern.ReplaceAllStringFunc(text, func(entity string) string {
		if replacement, ok := entities[entity]; ok {
			return replacement
		}
		return entity
	})
}

// FromURL derives a human-readable fallback title from a bare URL, for
// cards where no richer title could be fetched. Video platforms get
// their brand name; readable path slugs become Title Case; opaque
// id-like segments and empty paths fall back to the capitalized
// domain. Unparsable input comes back unchanged.
func FromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return rawURL
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	switch domain.DetectPlatformFromHost(host) {
	case domain.PlatformYouTube:
		return domain.PlatformName(domain.PlatformYouTube)
	case domain.PlatformVimeo:
		return domain.PlatformName(domain.PlatformVimeo)
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	last := segments[len(segments)-1]
	if last == "" {
		return capitalize(host)
	}

	// Purely numeric or long id-like segments are opaque identifiers,
	// not slugs; the domain reads better.
	if numericPattern.MatchString(last) || (len(last) > 15 && opaquePattern.MatchString(last)) {
		return capitalize(host)
	}

	cleaned := extPattern.ReplaceAllString(last, "")
	cleaned = strings.NewReplacer("-", " ", "_", " ").Replace(cleaned)
	cleaned = strings.TrimSpace(titleCase(cleaned))
	if cleaned == "" {
		return capitalize(host)
	}
	return cleaned
}

// titleCase upper-cases the first letter of each word, leaving the
// rest of the word untouched.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = capitalize(word)
	}
	return strings.Join(words, " ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
