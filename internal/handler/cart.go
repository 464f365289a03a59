package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gtteam/shop/internal/backend"
	"github.com/gtteam/shop/internal/websocket"
)

type CartHandler struct {
	backend *backend.Local
	hub     *websocket.Hub
}

func NewCartHandler(b *backend.Local, hub *websocket.Hub) *CartHandler {
	return &CartHandler{backend: b, hub: hub}
}

func (h *CartHandler) broadcast(msg websocket.Message) {
	if h.hub != nil {
		h.hub.Broadcast(msg)
	}
}

// Get returns the current server-side cart.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.backend.Cart(r.Context())
	if err != nil {
		log.Printf("failed to fetch cart: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "failed to fetch cart"})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

type addToCartRequest struct {
	RewardID string `json:"rewardId"`
	Quantity int    `json:"quantity"`
}

// Add puts a reward into the cart. A missing quantity means one unit.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid JSON"})
		return
	}

	req.RewardID = strings.TrimSpace(req.RewardID)
	if req.RewardID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "rewardId este obligatoriu"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	resp, err := h.backend.Add(r.Context(), req.RewardID, req.Quantity)
	if err != nil {
		log.Printf("failed to add to cart: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "failed to add to cart"})
		return
	}

	if resp.Success {
		h.broadcast(websocket.NewMessage(websocket.EntityCart, "updated", req.RewardID, nil))
	}
	writeJSON(w, http.StatusOK, resp)
}

type removeFromCartRequest struct {
	RewardID string `json:"rewardId"`
}

// Remove deletes a cart line.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var req removeFromCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid JSON"})
		return
	}

	req.RewardID = strings.TrimSpace(req.RewardID)
	if req.RewardID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "rewardId este obligatoriu"})
		return
	}

	resp, err := h.backend.Remove(r.Context(), req.RewardID)
	if err != nil {
		log.Printf("failed to remove from cart: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "failed to remove from cart"})
		return
	}

	if resp.Success {
		h.broadcast(websocket.NewMessage(websocket.EntityCart, "updated", req.RewardID, nil))
	}
	writeJSON(w, http.StatusOK, resp)
}
