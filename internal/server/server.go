package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gtteam/shop/internal/backend"
	"github.com/gtteam/shop/internal/handler"
	"github.com/gtteam/shop/internal/middleware"
	ws "github.com/gtteam/shop/internal/websocket"
)

// Server wires the simulated shop backend, the HTTP handlers, and the
// real-time feed into one routable unit.
type Server struct {
	db        *sql.DB
	hub       *ws.Hub
	catalogH  *handler.CatalogHandler
	cartH     *handler.CartHandler
	checkoutH *handler.CheckoutHandler
	userH     *handler.UserHandler
	historyH  *handler.HistoryHandler
	logger    *slog.Logger
}

func New(db *sql.DB, userID string, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))
	local := backend.NewLocal(db, userID, logger.With("component", "backend"))

	return &Server{
		db:        db,
		hub:       hub,
		catalogH:  handler.NewCatalogHandler(local),
		cartH:     handler.NewCartHandler(local, hub),
		checkoutH: handler.NewCheckoutHandler(local, hub),
		userH:     handler.NewUserHandler(local, hub),
		historyH:  handler.NewHistoryHandler(local),
		logger:    logger,
	}
}

// Hub exposes the websocket hub for out-of-band broadcasts.
func (s *Server) Hub() *ws.Hub {
	return s.hub
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/rewards", s.catalogH.List)
	mux.HandleFunc("GET /api/cart", s.cartH.Get)
	mux.HandleFunc("POST /api/cart/add", s.cartH.Add)
	mux.HandleFunc("POST /api/cart/remove", s.cartH.Remove)
	mux.HandleFunc("POST /api/checkout", s.checkoutH.Checkout)
	mux.HandleFunc("GET /api/user/profile", s.userH.Profile)
	mux.HandleFunc("POST /api/user/gift", s.userH.Gift)
	mux.HandleFunc("GET /api/user/history", s.historyH.List)

	mux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub))
	mux.HandleFunc("GET /health", s.healthHandler)

	return middleware.RequestLogger(s.logger.With("component", "http"))(mux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
