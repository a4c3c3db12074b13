package websocket

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/cinelog/cinelog-backend/pkg/logger"
)

// Hub tracks the open websocket connections per user. A user may be
// connected from several devices at once; a push goes to all of them.
type Hub struct {
	mu      sync.RWMutex
	clients map[uint][]*Client

	register   chan *Client
	unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uint][]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run owns the client registry. Call it once, in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.userID] = append(h.clients[client.userID], client)
			h.mu.Unlock()
			logger.Debug("websocket client connected", map[string]interface{}{
				"user_id": client.userID,
			})

		case client := <-h.unregister:
			h.mu.Lock()
			conns := h.clients[client.userID]
			for i, c := range conns {
				if c == client {
					h.clients[client.userID] = append(conns[:i], conns[i+1:]...)
					close(c.send)
					break
				}
			}
			if len(h.clients[client.userID]) == 0 {
				delete(h.clients, client.userID)
			}
			h.mu.Unlock()
		}
	}
}

// SendToUser pushes a JSON payload to every connection the user has open.
// It is not an error for the user to be offline.
func (h *Hub) SendToUser(userID uint, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	h.mu.RLock()
	conns := h.clients[userID]
	h.mu.RUnlock()

	var failed int
	for _, client := range conns {
		select {
		case client.send <- data:
		default:
			// Slow consumer; drop the message rather than block the hub.
			failed++
		}
	}
	if failed > 0 {
		return errors.New("some connections did not accept the message")
	}
	return nil
}

// ConnectedUsers reports how many distinct users are online.
func (h *Hub) ConnectedUsers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
