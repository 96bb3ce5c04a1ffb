package handlers

import (
	"net/http"

	"debtledger/internal/config"
	"debtledger/internal/websocket"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Handler struct {
	cfg     config.Config
	service LedgerService
	hub     *websocket.Hub
}

func New(cfg config.Config, service LedgerService, hub *websocket.Hub) *Handler {
	return &Handler{
		cfg:     cfg,
		service: service,
		hub:     hub,
	}
}

func (h *Handler) Routes() http.Handler {
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.cfg.AllowedOrigins},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Route("/entries", func(r chi.Router) {
		r.Get("/", h.ListEntries)
		r.Post("/borrow", h.Borrow)
		r.Post("/lend", h.Lend)
		r.Post("/{id}/payments", h.FixPayment)
		r.Post("/{id}/receipts", h.FixReceipt)
	})
	router.Get("/summary", h.GetSummary)
	router.Get("/ws/summary", h.WSSummary)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return router
}

func (h *Handler) WSSummary(w http.ResponseWriter, r *http.Request) {
	websocket.ServeWS(w, r, h.hub)
}
