// Command unfurl resolves a single URL from the command line and
// prints the classification, embed and preview as JSON. Handy for
// checking what the API would serve for a link without running it.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"distractions/internal/domain"
	"distractions/internal/pkg/logger"
	"distractions/internal/pkg/titles"
	"distractions/internal/pkg/urlclass"
	"distractions/internal/service/enrich"
)

type output struct {
	URL           string        `json:"url"`
	Kind          domain.Kind   `json:"kind"`
	Platform      string        `json:"platform,omitempty"`
	ID            string        `json:"id,omitempty"`
	Embed         *domain.Embed `json:"embed,omitempty"`
	Image         string        `json:"image,omitempty"`
	Title         string        `json:"title,omitempty"`
	FallbackTitle string        `json:"fallback_title,omitempty"`
}

func main() {
	var (
		skipFetch = flag.Bool("offline", false, "Skip network lookups, classify only")
		logLevel  = flag.String("log-level", "warn", "Log level")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: unfurl [-offline] <url>")
		os.Exit(1)
	}
	rawURL := flag.Arg(0)

	log := logger.New(*logLevel)

	c := urlclass.Classify(rawURL)
	out := output{
		URL:           rawURL,
		Kind:          c.Kind,
		Platform:      c.Platform,
		ID:            c.ID,
		FallbackTitle: titles.FromURL(rawURL),
	}
	if embed, ok := urlclass.ResolveEmbed(c); ok {
		out.Embed = &embed
	}

	if !*skipFetch {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		preview := enrich.New(log).Preview(ctx, domain.LinkTarget{URL: rawURL})
		out.Image = preview.Image
		out.Title = preview.Title
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Error("Failed to encode output", "error", err)
		os.Exit(1)
	}
}
