// internal/socket/hub.go
package socket

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	// Project mutation messages
	MessageProjectCreated MessageType = "project_created"
	MessageProjectUpdated MessageType = "project_updated"
	MessageProjectDeleted MessageType = "project_deleted"

	// Resource requirement messages
	MessageResourceAdded   MessageType = "resource_added"
	MessageResourceRemoved MessageType = "resource_removed"

	// System messages
	MessagePing MessageType = "ping"
	MessagePong MessageType = "pong"
)

// Message represents a WebSocket message
type Message struct {
	Type      MessageType            `json:"type"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

// Hub maintains the set of active clients and broadcasts mutation events to
// all of them. Every connected client sees every event; the SPA reacts by
// re-fetching whatever view it is showing.
type Hub struct {
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	mu sync.RWMutex
}

// NewHub creates a new Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	log.Println("[Hub] WebSocket hub started")

	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastToAll(message)
		}
	}
}

// Broadcast sends a typed message to every connected client.
func (h *Hub) Broadcast(msgType MessageType, payload map[string]interface{}) {
	msg := Message{
		Type:      msgType,
		Payload:   payload,
		Timestamp: time.Now(),
	}
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[Hub] Failed to marshal message: %v", err)
		return
	}

	select {
	case h.broadcast <- data:
	default:
		log.Println("[Hub] Broadcast channel full, dropping message")
	}
}

// GetConnectedClientsCount returns the number of connected clients
func (h *Hub) GetConnectedClientsCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
	log.Printf("[Hub] ✅ Client registered: id=%s, total_clients=%d", client.ID, len(h.clients))
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.Send)
		log.Printf("[Hub] ❌ Client disconnected: id=%s, total_clients=%d", client.ID, len(h.clients))
	}
}

func (h *Hub) broadcastToAll(message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.Send <- message:
		default:
			go func(c *Client) {
				h.unregister <- c
			}(client)
		}
	}
}
