package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gtteam/shop/internal/backend"
	"github.com/gtteam/shop/internal/model"
)

type CatalogHandler struct {
	backend *backend.Local
}

func NewCatalogHandler(b *backend.Local) *CatalogHandler {
	return &CatalogHandler{backend: b}
}

// List returns the full catalog, tagged with canonical categories.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	rewards, err := h.backend.FetchAll(r.Context())
	if err != nil {
		log.Printf("failed to fetch catalog: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "failed to fetch rewards"})
		return
	}
	if rewards == nil {
		rewards = []model.Reward{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"rewards": rewards})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
