package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"distractions/internal/domain"
)

type FeedHandler struct {
	logger *slog.Logger
	store  domain.DistractionStore
}

// FeedResponse carries every non-archived feed row; the store already
// orders them newest first.
type FeedResponse struct {
	Items []*FeedItemDto `json:"items"`
	Count int            `json:"count"`
}

type FeedItemDto struct {
	ID        int    `json:"id"`
	Entry     string `json:"entry"`
	Type      string `json:"type"`
	CreatedOn string `json:"created_on"`
}

type feedActionRequest struct {
	ID int `json:"id"`
}

func NewFeedHandler(logger *slog.Logger, store domain.DistractionStore) *FeedHandler {
	return &FeedHandler{
		logger: logger,
		store:  store,
	}
}

// writeJSONResponse writes a JSON response to the ResponseWriter
func (h *FeedHandler) writeJSONResponse(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *FeedHandler) parseActionRequest(w http.ResponseWriter, r *http.Request) (int, bool) {
	var req feedActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return 0, false
	}
	if req.ID <= 0 {
		http.Error(w, "id is required", http.StatusBadRequest)
		return 0, false
	}
	return req.ID, true
}

func (h *FeedHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	rows, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to retrieve feed", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	items := make([]*FeedItemDto, 0, len(rows))
	for _, row := range rows {
		items = append(items, &FeedItemDto{
			ID:        row.ID,
			Entry:     row.Entry,
			Type:      row.Type,
			CreatedOn: row.CreatedOn,
		})
	}

	h.logger.Info("Retrieved feed", "count", len(items))
	h.writeJSONResponse(w, FeedResponse{Items: items, Count: len(items)})
}

func (h *FeedHandler) ArchiveItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseActionRequest(w, r)
	if !ok {
		return
	}

	if err := h.store.Archive(r.Context(), id); err != nil {
		h.logger.Error("Failed to archive item", "error", err, "id", id)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("Archived item", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *FeedHandler) HideItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseActionRequest(w, r)
	if !ok {
		return
	}

	if err := h.store.Hide(r.Context(), id); err != nil {
		h.logger.Error("Failed to hide item", "error", err, "id", id)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("Hid item", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *FeedHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseActionRequest(w, r)
	if !ok {
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		h.logger.Error("Failed to delete item", "error", err, "id", id)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("Deleted item", "id", id)
	w.WriteHeader(http.StatusNoContent)
}
