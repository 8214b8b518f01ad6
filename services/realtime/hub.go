package realtime

import (
	"sync"
	"sync/atomic"

	"gatherly/utils"

	"go.uber.org/zap"
)

// Hub owns every live WebSocket subscription. Each connected browser tab is
// one Client; a user may hold several at once. Services publish snapshots
// through the EventPublisher interface and the hub fans them out to every
// connection of the targeted users.
type Hub struct {
	// clients maps userID to that user's connection set.
	clients map[string]map[*Client]bool
	mu      sync.RWMutex

	register   chan *Client
	unregister chan *Client

	// seq numbers outbound events so clients can detect skipped snapshots.
	seq atomic.Int64
}

// NewHub creates an empty hub. Call Run in a goroutine before registering clients.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run is the hub's event loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		}
	}
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.userID]; !ok {
		h.clients[client.userID] = make(map[*Client]bool)
	}
	h.clients[client.userID][client] = true

	utils.GetLogger().Debug("realtime client connected",
		zap.String("userID", client.userID),
		zap.Int("connections", len(h.clients[client.userID])))
}

// removeClient detaches a client and closes its send channel. Dropping the
// subscription here is what prevents leaked listeners from re-firing
// notification side effects after the user navigates away.
func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.clients[client.userID]
	if !ok {
		return
	}
	if _, exists := clients[client]; !exists {
		return
	}
	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.clients, client.userID)
	}

	utils.GetLogger().Debug("realtime client disconnected",
		zap.String("userID", client.userID),
		zap.Int("remaining", len(clients)))
}

// BroadcastToUser delivers an event to every connection of one user.
func (h *Hub) BroadcastToUser(userID string, event Event) {
	event.Seq = h.seq.Add(1)
	data, err := marshalEvent(event)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	h.sendLocked(userID, data)
}

// BroadcastToUsers delivers an event to every connection of each listed user.
// The event is serialized once and shares a single sequence number.
func (h *Hub) BroadcastToUsers(userIDs []string, event Event) {
	event.Seq = h.seq.Add(1)
	data, err := marshalEvent(event)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, userID := range userIDs {
		h.sendLocked(userID, data)
	}
}

// sendLocked pushes bytes to every connection of userID. Callers hold h.mu.
// A client whose buffer is full is slow or dead; it gets evicted rather than
// stalling the broadcast.
func (h *Hub) sendLocked(userID string, data []byte) {
	clients, ok := h.clients[userID]
	if !ok {
		return
	}
	for client := range clients {
		select {
		case client.send <- data:
		default:
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

// OnlineUserIDs returns the IDs of all users with at least one live connection.
func (h *Hub) OnlineUserIDs() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	ids := make([]string, 0, len(h.clients))
	for userID := range h.clients {
		ids = append(ids, userID)
	}
	return ids
}

// IsOnline reports whether the user has a live connection. Offline users get
// an FCM push instead of a hub event.
func (h *Hub) IsOnline(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.clients[userID]
	return ok
}
