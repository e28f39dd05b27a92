package coda

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"distractions/internal/domain"
)

func createTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := New("test-token", "x8nvwL5l1e", "grid-curated", "grid-inbox", createTestLogger())
	c.baseURL = srv.URL
	return c, srv
}

func TestListCuratedFiltersLiveRows(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q, want Bearer test-token", got)
		}
		if !strings.Contains(r.URL.Path, "/docs/x8nvwL5l1e/tables/grid-curated/rows") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		fmt.Fprint(w, `{"items":[
			{"id":"i-1","name":"First","values":{"c-yrhJnxU2ns":"First","c-V60iC4UaYP":"https://example.com/a","c-R5LP8UaCQf":"https://cdn.example.com/a.jpg","c-q3eAZofAM0":"1.2","c-39S1Z-7QdP":"Live"}},
			{"id":"i-2","name":"Draft","values":{"c-yrhJnxU2ns":"Draft","c-39S1Z-7QdP":"Draft"}},
			{"id":"i-3","name":"Second","values":{"c-yrhJnxU2ns":"Second","c-V60iC4UaYP":"https://example.com/b","c-q3eAZofAM0":2,"c-39S1Z-7QdP":"Live"}}
		]}`)
	})
	client, _ := newTestClient(t, handler)

	rows, err := client.ListCurated(context.Background())
	if err != nil {
		t.Fatalf("ListCurated returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].ID != "i-1" || rows[0].Link != "https://example.com/a" {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[0].Scale != "1.2" {
		t.Errorf("Scale = %q, want 1.2", rows[0].Scale)
	}
	if rows[1].Scale != "2" {
		t.Errorf("numeric Scale = %q, want 2", rows[1].Scale)
	}
}

func TestListCuratedPaginates(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("pageToken") == "" {
			fmt.Fprint(w, `{"items":[{"id":"i-1","values":{"c-39S1Z-7QdP":"Live"}}],"nextPageToken":"tok-2"}`)
			return
		}
		if got := r.URL.Query().Get("pageToken"); got != "tok-2" {
			t.Errorf("pageToken = %q, want tok-2", got)
		}
		fmt.Fprint(w, `{"items":[{"id":"i-2","values":{"c-39S1Z-7QdP":"Live"}}]}`)
	})
	client, _ := newTestClient(t, handler)

	rows, err := client.ListCurated(context.Background())
	if err != nil {
		t.Fatalf("ListCurated returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows across pages, want 2", len(rows))
	}
	if rows[1].ID != "i-2" {
		t.Errorf("second page row ID = %q, want i-2", rows[1].ID)
	}
}

func TestListInboxSortsNewestFirst(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("sortBy") != "createdAt" || q.Get("direction") != "descending" {
			t.Errorf("sort query = %v, want sortBy=createdAt direction=descending", q)
		}
		fmt.Fprint(w, `{"items":[
			{"id":"i-9","name":"fallback entry","createdAt":"2026-08-30T12:00:00Z","values":{"c-_y8fi93TKI":"link","c-zQlx72b6vU":"A Title"}},
			{"id":"i-8","createdAt":"2026-08-29T12:00:00Z","values":{"c-JNxO-bx_kU":"https://example.com/x","c-_y8fi93TKI":"link"}}
		]}`)
	})
	client, _ := newTestClient(t, handler)

	rows, err := client.ListInbox(context.Background())
	if err != nil {
		t.Fatalf("ListInbox returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Entry != "fallback entry" {
		t.Errorf("empty Entry cell should fall back to row name, got %q", rows[0].Entry)
	}
	if rows[0].Title != "A Title" || rows[1].Entry != "https://example.com/x" {
		t.Errorf("unexpected rows: %+v, %+v", rows[0], rows[1])
	}
}

func TestRouteAndDeleteInsertsBeforeDeleting(t *testing.T) {
	var calls []string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodPost {
			var body struct {
				Rows []struct {
					Cells []struct {
						Column string `json:"column"`
						Value  string `json:"value"`
					} `json:"cells"`
				} `json:"rows"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode insert body: %v", err)
			}
			if len(body.Rows) != 1 || len(body.Rows[0].Cells) != 1 {
				t.Fatalf("unexpected insert shape: %+v", body)
			}
			cell := body.Rows[0].Cells[0]
			if cell.Column != "Entry" || cell.Value != "https://example.com/routed" {
				t.Errorf("cell = %+v, want Entry=https://example.com/routed", cell)
			}
		}
		w.WriteHeader(http.StatusAccepted)
	})
	client, _ := newTestClient(t, handler)

	err := client.RouteAndDelete(context.Background(), "i-5", domain.ActionTask, "https://example.com/routed")
	if err != nil {
		t.Fatalf("RouteAndDelete returned error: %v", err)
	}

	if len(calls) != 2 {
		t.Fatalf("got %d API calls, want 2: %v", len(calls), calls)
	}
	if !strings.HasPrefix(calls[0], "POST ") || !strings.Contains(calls[0], actionTables[domain.ActionTask]) {
		t.Errorf("first call should insert into the task table, got %q", calls[0])
	}
	if calls[1] != "DELETE /docs/x8nvwL5l1e/tables/grid-inbox/rows/i-5" {
		t.Errorf("second call = %q, want inbox row delete", calls[1])
	}
}

func TestRouteAndDeleteKeepsRowWhenInsertFails(t *testing.T) {
	var deleted bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			deleted = true
		}
		w.WriteHeader(http.StatusBadGateway)
	})
	client, _ := newTestClient(t, handler)

	err := client.RouteAndDelete(context.Background(), "i-5", domain.ActionMedia, "content")
	if err == nil {
		t.Fatal("expected error when insert fails")
	}
	if deleted {
		t.Error("inbox row must not be deleted after a failed insert")
	}
}

func TestRouteAndDeleteRejectsUnknownAction(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no API call expected for an unknown action")
	})
	client, _ := newTestClient(t, handler)

	if err := client.RouteAndDelete(context.Background(), "i-5", "ZZ", "content"); err == nil {
		t.Fatal("expected error for unknown action tag")
	}
}

func TestDeleteInboxPropagatesAPIErrors(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	client, _ := newTestClient(t, handler)

	if err := client.DeleteInbox(context.Background(), "i-1"); err == nil {
		t.Fatal("expected error on 401 response")
	}
}
