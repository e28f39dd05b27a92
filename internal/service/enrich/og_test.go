package enrich

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"
)

// createTestLogger creates a logger for testing
func createTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError, // Only show errors during tests
	}))
}

func TestOGFetcherExtractsTags(t *testing.T) {
	tests := []struct {
		name      string
		html      string
		wantImage string
		wantTitle string
	}{
		{
			name:      "property before content",
			html:      `<html><head><meta property="og:image" content="https://cdn.example.com/a.jpg"><meta property="og:title" content="A Title"></head></html>`,
			wantImage: "https://cdn.example.com/a.jpg",
			wantTitle: "A Title",
		},
		{
			name:      "content before property",
			html:      `<html><head><meta property="og:image" content="X"><meta content="Y" property="og:title"></head></html>`,
			wantImage: "X",
			wantTitle: "Y",
		},
		{
			name:      "name attribute instead of property",
			html:      `<meta name="og:title" content="Named Title">`,
			wantTitle: "Named Title",
		},
		{
			name:      "case-insensitive property value",
			html:      `<meta property="OG:TITLE" content="Loud Title">`,
			wantTitle: "Loud Title",
		},
		{
			name:      "first match wins",
			html:      `<meta property="og:title" content="First"><meta property="og:title" content="Second">`,
			wantTitle: "First",
		},
		{
			name: "no og tags",
			html: `<html><head><title>plain</title></head></html>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/html")
				w.Write([]byte(tt.html))
			}))
			defer server.Close()

			fetcher := NewOGFetcher(createTestLogger())
			got := fetcher.Fetch(context.Background(), server.URL)

			if got.Image != tt.wantImage {
				t.Errorf("Image = %q, want %q", got.Image, tt.wantImage)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantTitle)
			}
		})
	}
}

func TestOGFetcherSendsUserAgent(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	fetcher := NewOGFetcher(createTestLogger())
	fetcher.Fetch(context.Background(), server.URL)

	if gotAgent != userAgent {
		t.Errorf("User-Agent = %q, want %q", gotAgent, userAgent)
	}
}

func TestOGFetcherFoldsFailuresToEmpty(t *testing.T) {
	t.Run("non-success status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusForbidden)
		}))
		defer server.Close()

		fetcher := NewOGFetcher(createTestLogger())
		if got := fetcher.Fetch(context.Background(), server.URL); got != (OGData{}) {
			t.Errorf("Fetch() = %+v, want empty", got)
		}
	})

	t.Run("unreachable host", func(t *testing.T) {
		fetcher := NewOGFetcher(createTestLogger())
		if got := fetcher.Fetch(context.Background(), "http://127.0.0.1:1"); got != (OGData{}) {
			t.Errorf("Fetch() = %+v, want empty", got)
		}
	})

	t.Run("invalid URL", func(t *testing.T) {
		fetcher := NewOGFetcher(createTestLogger())
		if got := fetcher.Fetch(context.Background(), "http://exa mple.com"); got != (OGData{}) {
			t.Errorf("Fetch() = %+v, want empty", got)
		}
	})
}

func TestOGFetcherTimesOut(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	fetcher := NewOGFetcher(createTestLogger())
	fetcher.client.Timeout = 100 * time.Millisecond

	start := time.Now()
	got := fetcher.Fetch(context.Background(), server.URL)
	elapsed := time.Since(start)

	if got != (OGData{}) {
		t.Errorf("Fetch() = %+v, want empty on timeout", got)
	}
	if elapsed > 2*time.Second {
		t.Errorf("Fetch() took %v, should have aborted at the timeout", elapsed)
	}
}
