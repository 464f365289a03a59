package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gtteam/shop/internal/backend"
	"github.com/gtteam/shop/internal/model"
	"github.com/gtteam/shop/internal/websocket"
)

type CheckoutHandler struct {
	backend *backend.Local
	hub     *websocket.Hub
}

func NewCheckoutHandler(b *backend.Local, hub *websocket.Hub) *CheckoutHandler {
	return &CheckoutHandler{backend: b, hub: hub}
}

func (h *CheckoutHandler) broadcast(msg websocket.Message) {
	if h.hub != nil {
		h.hub.Broadcast(msg)
	}
}

type checkoutRequest struct {
	Items []model.CartLine `json:"items"`
}

// Checkout settles the cart. Business refusals come back as a 200 with
// success false so clients can show the message; only infrastructure
// failures map to 5xx.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid JSON"})
		return
	}

	resp, err := h.backend.Checkout(r.Context(), req.Items)
	if err != nil {
		log.Printf("checkout failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "checkout failed"})
		return
	}

	if resp.Success {
		h.broadcast(websocket.NewMessage(websocket.EntityCheckout, "completed", resp.TransactionID, map[string]any{
			"newBalance": resp.NewBalance,
		}))
		h.broadcast(websocket.NewMessage(websocket.EntityBalance, "updated", "", map[string]any{
			"newBalance": resp.NewBalance,
		}))
		for _, item := range resp.PurchasedItems {
			h.broadcast(websocket.NewMessage(websocket.EntityStock, "updated", item.RewardID, nil))
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
