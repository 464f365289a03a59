package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gtteam/shop/internal/backend"
	"github.com/gtteam/shop/internal/websocket"
)

type UserHandler struct {
	backend *backend.Local
	hub     *websocket.Hub
}

func NewUserHandler(b *backend.Local, hub *websocket.Hub) *UserHandler {
	return &UserHandler{backend: b, hub: hub}
}

func (h *UserHandler) broadcast(msg websocket.Message) {
	if h.hub != nil {
		h.hub.Broadcast(msg)
	}
}

// Profile returns the shop user with the current balance.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.backend.Profile(r.Context())
	if err != nil {
		log.Printf("failed to fetch profile: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "failed to fetch profile"})
		return
	}
	writeJSON(w, http.StatusOK, user)
}

type giftRequest struct {
	Recipient string `json:"recipient"`
	Amount    int    `json:"amount"`
}

// Gift transfers points to another member.
func (h *UserHandler) Gift(w http.ResponseWriter, r *http.Request) {
	var req giftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid JSON"})
		return
	}

	req.Recipient = strings.TrimSpace(req.Recipient)
	if req.Recipient == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "recipient este obligatoriu"})
		return
	}
	if req.Amount <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "amount trebuie să fie pozitiv"})
		return
	}

	resp, err := h.backend.SendPoints(r.Context(), req.Recipient, req.Amount)
	if err != nil {
		log.Printf("failed to send points: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "failed to send points"})
		return
	}

	if resp.Success {
		h.broadcast(websocket.NewMessage(websocket.EntityBalance, "updated", "", map[string]any{
			"newBalance": resp.NewBalance,
		}))
	}
	writeJSON(w, http.StatusOK, resp)
}
