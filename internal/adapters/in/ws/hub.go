// Package ws implements the change feed over WebSocket. Subscribers join a
// room per scope and receive payload-less refresh hints; on any hint (or on
// reconnect) they re-query the API, so a missed frame can never leave them
// with stale partial state.
package ws

import (
	"encoding/json"
	"log/slog"
	"sync"

	"mezzo/internal/core/ports"
)

// Event is the wire form of a refresh hint. There is deliberately no
// payload beyond the scope name.
type Event struct {
	Type  string `json:"type"`
	Scope string `json:"scope"`
}

// Hub maintains the set of active clients per scope and broadcasts refresh
// hints to them. Implements ports.ChangeNotifier.
type Hub struct {
	rooms map[ports.Scope]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan ports.Scope

	mu     sync.RWMutex
	logger *slog.Logger
}

// NewHub creates a new Hub instance.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		rooms:      make(map[ports.Scope]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan ports.Scope, 256),
		logger:     logger,
	}
}

// Run starts the hub's main loop.
// This should be called as a goroutine: go hub.Run()
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.rooms[client.scope] == nil {
				h.rooms[client.scope] = make(map[*Client]bool)
			}
			h.rooms[client.scope][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.rooms[client.scope]; ok {
				if _, exists := clients[client]; exists {
					delete(clients, client)
					close(client.send)
					if len(clients) == 0 {
						delete(h.rooms, client.scope)
					}
				}
			}
			h.mu.Unlock()

		case scope := <-h.broadcast:
			h.mu.Lock()
			clients := h.rooms[scope]

			message, err := json.Marshal(Event{Type: "refresh", Scope: string(scope)})
			if err != nil {
				h.mu.Unlock()
				continue
			}

			for client := range clients {
				select {
				case client.send <- message:
				default:
					// Client's send buffer is full, close and unregister.
					close(client.send)
					delete(h.rooms[scope], client)
					if len(h.rooms[scope]) == 0 {
						delete(h.rooms, scope)
					}
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish notifies all subscribers of the scope that its data changed.
// Never blocks: when the broadcast queue is full the hint is dropped, which
// is safe because subscribers refresh on reconnect anyway.
func (h *Hub) Publish(scope ports.Scope) {
	select {
	case h.broadcast <- scope:
	default:
		h.logger.Warn("change feed queue full, dropping hint", "scope", scope)
	}
}
