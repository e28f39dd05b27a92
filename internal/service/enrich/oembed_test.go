package enrich

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"distractions/internal/domain"
)

func TestEndpointFor(t *testing.T) {
	fetcher := NewVideoTitleFetcher(createTestLogger())

	tests := []struct {
		name     string
		platform string
		videoURL string
		want     string
		wantErr  bool
	}{
		{
			name:     "YouTube requires format=json",
			platform: domain.PlatformYouTube,
			videoURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want:     "https://www.youtube.com/oembed?format=json&url=https%3A%2F%2Fwww.youtube.com%2Fwatch%3Fv%3DdQw4w9WgXcQ",
		},
		{
			name:     "Vimeo endpoint selects JSON by path",
			platform: domain.PlatformVimeo,
			videoURL: "https://vimeo.com/76979871",
			want:     "https://vimeo.com/api/oembed.json?url=https%3A%2F%2Fvimeo.com%2F76979871",
		},
		{
			name:     "unknown platform",
			platform: "myspace",
			videoURL: "https://myspace.com/video/1",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fetcher.endpointFor(tt.platform, tt.videoURL)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("endpointFor() expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("endpointFor() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("endpointFor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVideoTitleFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("format") != "json" {
			t.Errorf("missing format=json, query was %q", r.URL.RawQuery)
		}
		// Version arrives as a number from some providers; the decoder
		// must tolerate it.
		w.Write([]byte(`{"version": 1.0, "title": "Never Gonna Give You Up", "type": "video"}`))
	}))
	defer server.Close()

	fetcher := NewVideoTitleFetcher(createTestLogger())
	fetcher.youtubeEndpoint = server.URL

	got := fetcher.Fetch(context.Background(), domain.PlatformYouTube, "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	if want := "Never Gonna Give You Up"; got != want {
		t.Errorf("Fetch() = %q, want %q", got, want)
	}
}

func TestVideoTitleFetchFailures(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		}))
		defer server.Close()

		fetcher := NewVideoTitleFetcher(createTestLogger())
		fetcher.vimeoEndpoint = server.URL

		if got := fetcher.Fetch(context.Background(), domain.PlatformVimeo, "https://vimeo.com/404"); got != "" {
			t.Errorf("Fetch() = %q, want empty", got)
		}
	})

	t.Run("unknown platform", func(t *testing.T) {
		fetcher := NewVideoTitleFetcher(createTestLogger())
		if got := fetcher.Fetch(context.Background(), "myspace", "https://myspace.com/video/1"); got != "" {
			t.Errorf("Fetch() = %q, want empty", got)
		}
	})
}
