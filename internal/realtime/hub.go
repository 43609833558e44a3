// Package realtime pushes live location fixes to connected admin dashboards
// over websockets.
package realtime

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const MessageLocationUpdate = "location_update"

type Message struct {
	Type      string          `json:"type"`
	Timestamp int64           `json:"timestamp"`
	Data      json.RawMessage `json:"data,omitempty"`
}

type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mutex      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run serves register, unregister and broadcast requests until ctx ends.
// Register and Unregister stop blocking once it has returned.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.mutex.Unlock()
			logrus.WithField("user_id", client.UserID).Debug("realtime client connected")

		case client := <-h.unregister:
			h.remove(client)

		case message := <-h.broadcast:
			h.sendToAll(message)
		}
	}
}

// Register adds a client. It returns false once the hub has stopped.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Publish wraps data in a typed envelope and queues it for every client.
// It drops the message when the hub is saturated.
func (h *Hub) Publish(msgType string, data []byte) {
	payload, err := json.Marshal(Message{
		Type:      msgType,
		Timestamp: time.Now().UnixMilli(),
		Data:      json.RawMessage(data),
	})
	if err != nil {
		logrus.WithError(err).Warn("failed to encode realtime message")
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		logrus.Warn("realtime hub saturated, dropping message")
	}
}

func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

func (h *Hub) sendToAll(message []byte) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for client := range h.clients {
		select {
		case client.send <- message:
		default:
			// Slow consumer: drop it rather than block the hub.
			close(client.send)
			delete(h.clients, client)
		}
	}
}

func (h *Hub) remove(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
		logrus.WithField("user_id", client.UserID).Debug("realtime client disconnected")
	}
}

func (h *Hub) closeAll() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for client := range h.clients {
		close(client.send)
		delete(h.clients, client)
	}
}

func (h *Hub) hasClient(id uuid.UUID) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	for client := range h.clients {
		if client.UserID == id {
			return true
		}
	}
	return false
}
