package websocket

import (
	"encoding/json"
	"sync"

	"debtledger/internal/money"
)

// SummaryUpdate mirrors the aggregate totals shown at the top of the ledger
// page; one is pushed to every connected client after each mutation.
type SummaryUpdate struct {
	NetBalance    money.Amount `json:"net_balance"`
	TotalOwedToMe money.Amount `json:"total_owed_to_me"`
	TotalIOwe     money.Amount `json:"total_i_owe"`
}

type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
	}
}

func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
}

func (h *Hub) BroadcastSummary(update SummaryUpdate) {
	payload, _ := json.Marshal(update)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.send <- payload:
		default:
		}
	}
}
