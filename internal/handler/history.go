package handler

import (
	"log"
	"net/http"

	"github.com/gtteam/shop/internal/backend"
	"github.com/gtteam/shop/internal/model"
)

type HistoryHandler struct {
	backend *backend.Local
}

func NewHistoryHandler(b *backend.Local) *HistoryHandler {
	return &HistoryHandler{backend: b}
}

// List returns the purchase log, newest first.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	purchases, err := h.backend.History(r.Context())
	if err != nil {
		log.Printf("failed to fetch history: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "failed to fetch history"})
		return
	}
	if purchases == nil {
		purchases = []model.PurchasedItem{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"purchases": purchases})
}
