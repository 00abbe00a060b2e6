package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// Hub tracks active client connections keyed by user id and pushes
// server-side events (notifications, direct messages) to them. Unlike a chat
// hub there is no room concept; every push targets exactly one user.
type Hub struct {
	// Register requests from the clients.
	Register chan *Client

	// Unregister requests from clients.
	Unregister chan *Client

	clients map[*Client]bool

	// Find clients by user id for directed pushes.
	userClients map[uint][]*Client

	mu sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Register:    make(chan *Client),
		Unregister:  make(chan *Client),
		clients:     make(map[*Client]bool),
		userClients: make(map[uint][]*Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			h.userClients[client.UserID] = append(h.userClients[client.UserID], client)
			h.mu.Unlock()
			log.Printf("User %d connected to push channel", client.UserID)
		case client := <-h.Unregister:
			h.mu.Lock()
			h.evict(client)
			h.mu.Unlock()
		}
	}
}

// evict closes a client's channel and forgets it. Caller must hold mu. A
// client may be evicted twice (stalled send followed by its own unregister);
// only the first call closes the channel.
func (h *Hub) evict(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.Send)

	conns := h.userClients[client.UserID]
	for i, conn := range conns {
		if conn == client {
			h.userClients[client.UserID] = append(conns[:i], conns[i+1:]...)
			break
		}
	}
	if len(h.userClients[client.UserID]) == 0 {
		delete(h.userClients, client.UserID)
		log.Printf("User %d disconnected from push channel", client.UserID)
	}
}

// SendToUser pushes a JSON-encoded event to all of a user's connections.
// Users without an open connection are skipped silently; the event is still
// readable through the REST endpoints.
func (h *Hub) SendToUser(userID uint, event interface{}) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to encode push event: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	// evict mutates the slice, so iterate over a copy.
	conns := append([]*Client(nil), h.userClients[userID]...)
	for _, client := range conns {
		select {
		case client.Send <- payload:
		default:
			h.evict(client)
		}
	}
}

// IsUserOnline reports whether the user has any open push connection.
func (h *Hub) IsUserOnline(userID uint) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.userClients[userID]) > 0
}
