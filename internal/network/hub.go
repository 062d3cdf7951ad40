package network

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Future-R/PrivateDerby/internal/engine"
	"github.com/Future-R/PrivateDerby/internal/platform/logger"
	"github.com/Future-R/PrivateDerby/internal/platform/metrics"
)

// StateMessage is the envelope pushed to every connected client after a
// dispatch. Actions are included so the UI never has to issue a second
// query to redraw its choices.
type StateMessage struct {
	Type    string          `json:"type"` // always "state"
	State   engine.Snapshot `json:"state"`
	Actions []engine.Action `json:"actions"`
}

// Hub maintains the set of active clients and broadcasts messages to them.
type Hub struct {
	session    *Session
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	mu         sync.Mutex
	logger     *logger.Logger
}

// NewHub initializes a new WebSocket Hub over a game session.
func NewHub(session *Session, log *logger.Logger) *Hub {
	return &Hub{
		session:    session,
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		logger:     log,
	}
}

// Run starts the Hub's main loop to handle client connections and broadcasts.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.logger.Info("WebSocket Hub shutting down.")
			return
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			metrics.Get().RecordWSConnection(1)
			h.logger.Info("New WebSocket client connected")

			// Fresh clients get the current state immediately.
			client.sendState(h.stateMessage())
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				metrics.Get().RecordWSConnection(-1)
				h.logger.Info("WebSocket client disconnected")
			}
			h.mu.Unlock()
		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
					metrics.Get().RecordWSMessage(false)
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastState serializes the current state and pushes it to all clients.
func (h *Hub) BroadcastState() {
	payload, err := json.Marshal(h.stateMessage())
	if err != nil {
		h.logger.Error("Failed to serialize state for WebSocket broadcast: %v", err)
		metrics.Get().RecordWSError()
		return
	}
	h.broadcast <- payload
}

func (h *Hub) stateMessage() StateMessage {
	return StateMessage{
		Type:    "state",
		State:   h.session.Snapshot(),
		Actions: h.session.Actions(),
	}
}
