package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"distractions/internal/domain"
)

type stubDistractionStore struct {
	rows []*domain.DistractionRow
	err  error

	archived []int
	hidden   []int
	deleted  []int
}

func (s *stubDistractionStore) List(ctx context.Context) ([]*domain.DistractionRow, error) {
	return s.rows, s.err
}

func (s *stubDistractionStore) Archive(ctx context.Context, id int) error {
	s.archived = append(s.archived, id)
	return s.err
}

func (s *stubDistractionStore) Hide(ctx context.Context, id int) error {
	s.hidden = append(s.hidden, id)
	return s.err
}

func (s *stubDistractionStore) Delete(ctx context.Context, id int) error {
	s.deleted = append(s.deleted, id)
	return s.err
}

func TestGetFeed(t *testing.T) {
	store := &stubDistractionStore{rows: []*domain.DistractionRow{
		{ID: 2, Entry: "https://example.com/b", Type: "link", CreatedOn: "2026-08-31T10:00:00Z"},
		{ID: 1, Entry: "https://example.com/a", Type: "link", CreatedOn: "2026-08-30T10:00:00Z"},
	}}
	handler := NewFeedHandler(createTestLogger(), store)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/feed", nil)
	rec := httptest.NewRecorder()
	handler.GetFeed(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body FeedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Count != 2 || len(body.Items) != 2 {
		t.Fatalf("unexpected count: %+v", body)
	}
	if body.Items[0].ID != 2 {
		t.Errorf("store order must be preserved, first item ID = %d", body.Items[0].ID)
	}
}

func TestGetFeedStoreErrorIs500(t *testing.T) {
	store := &stubDistractionStore{err: errors.New("baserow down")}
	handler := NewFeedHandler(createTestLogger(), store)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/feed", nil)
	rec := httptest.NewRecorder()
	handler.GetFeed(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestFeedActions(t *testing.T) {
	tests := []struct {
		name    string
		handle  func(h *FeedHandler) http.HandlerFunc
		touched func(s *stubDistractionStore) []int
	}{
		{"archive", func(h *FeedHandler) http.HandlerFunc { return h.ArchiveItem }, func(s *stubDistractionStore) []int { return s.archived }},
		{"hide", func(h *FeedHandler) http.HandlerFunc { return h.HideItem }, func(s *stubDistractionStore) []int { return s.hidden }},
		{"delete", func(h *FeedHandler) http.HandlerFunc { return h.DeleteItem }, func(s *stubDistractionStore) []int { return s.deleted }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubDistractionStore{}
			handler := NewFeedHandler(createTestLogger(), store)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/feed/"+tt.name, strings.NewReader(`{"id":42}`))
			rec := httptest.NewRecorder()
			tt.handle(handler)(rec, req)

			if rec.Code != http.StatusNoContent {
				t.Fatalf("status = %d, want 204", rec.Code)
			}
			got := tt.touched(store)
			if len(got) != 1 || got[0] != 42 {
				t.Errorf("store calls = %v, want [42]", got)
			}
		})
	}
}

func TestFeedActionRejectsBadBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "nope"},
		{"missing id", "{}"},
		{"negative id", `{"id":-1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubDistractionStore{}
			handler := NewFeedHandler(createTestLogger(), store)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/feed/archive", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			handler.ArchiveItem(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if len(store.archived) != 0 {
				t.Error("store must not be called on a bad request")
			}
		})
	}
}
