package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"distractions/internal/domain"
)

type InboxHandler struct {
	logger *slog.Logger
	store  domain.InboxStore
}

type InboxResponse struct {
	Items []*InboxItemDto `json:"items"`
	Count int             `json:"count"`
}

type InboxItemDto struct {
	ID         string    `json:"id"`
	Entry      string    `json:"entry"`
	RecordType string    `json:"record_type"`
	Title      string    `json:"title"`
	CreatedAt  time.Time `json:"created_at"`
}

type inboxActionRequest struct {
	ID     string `json:"id"`
	Action string `json:"action"`
	Entry  string `json:"entry"`
}

type inboxDeleteRequest struct {
	ID string `json:"id"`
}

func NewInboxHandler(logger *slog.Logger, store domain.InboxStore) *InboxHandler {
	return &InboxHandler{
		logger: logger,
		store:  store,
	}
}

// writeJSONResponse writes a JSON response to the ResponseWriter
func (h *InboxHandler) writeJSONResponse(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *InboxHandler) GetInbox(w http.ResponseWriter, r *http.Request) {
	rows, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to retrieve inbox", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	items := make([]*InboxItemDto, 0, len(rows))
	for _, row := range rows {
		items = append(items, &InboxItemDto{
			ID:         row.ID,
			Entry:      row.Entry,
			RecordType: row.RecordType,
			Title:      row.Title,
			CreatedAt:  row.CreatedAt,
		})
	}

	h.logger.Info("Retrieved inbox", "count", len(items))
	h.writeJSONResponse(w, InboxResponse{Items: items, Count: len(items)})
}

// RouteItem copies an inbox entry into the destination table its
// action tag names, then removes it from the inbox.
func (h *InboxHandler) RouteItem(w http.ResponseWriter, r *http.Request) {
	var req inboxActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ID == "" || req.Entry == "" {
		http.Error(w, "id and entry are required", http.StatusBadRequest)
		return
	}
	if !domain.IsValidAction(req.Action) {
		http.Error(w, "Unknown action", http.StatusBadRequest)
		return
	}

	if err := h.store.RouteAndDelete(r.Context(), req.ID, req.Action, req.Entry); err != nil {
		h.logger.Error("Failed to route inbox item", "error", err, "id", req.ID, "action", req.Action)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("Routed inbox item", "id", req.ID, "action", req.Action)
	w.WriteHeader(http.StatusNoContent)
}

func (h *InboxHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	var req inboxDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	if err := h.store.Delete(r.Context(), req.ID); err != nil {
		h.logger.Error("Failed to delete inbox item", "error", err, "id", req.ID)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("Deleted inbox item", "id", req.ID)
	w.WriteHeader(http.StatusNoContent)
}
