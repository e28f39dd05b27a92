package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"distractions/internal/domain"
)

type CuratedHandler struct {
	logger *slog.Logger
	store  domain.CuratedStore
}

type CuratedResponse struct {
	Items []*CuratedItemDto `json:"items"`
	Count int               `json:"count"`
}

type CuratedItemDto struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Link  string `json:"link"`
	Image string `json:"image"`
	Scale string `json:"scale"`
}

func NewCuratedHandler(logger *slog.Logger, store domain.CuratedStore) *CuratedHandler {
	return &CuratedHandler{
		logger: logger,
		store:  store,
	}
}

// GetCurated lists the published picks. The store only surfaces rows
// whose status is Live, so no filtering happens here.
func (h *CuratedHandler) GetCurated(w http.ResponseWriter, r *http.Request) {
	rows, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to retrieve curated items", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	items := make([]*CuratedItemDto, 0, len(rows))
	for _, row := range rows {
		items = append(items, &CuratedItemDto{
			ID:    row.ID,
			Name:  row.Name,
			Link:  row.Link,
			Image: row.Image,
			Scale: row.Scale,
		})
	}

	h.logger.Info("Retrieved curated items", "count", len(items))
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(CuratedResponse{Items: items, Count: len(items)}); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}
