package notification

import (
	"sync"

	"github.com/gorilla/websocket"
)

type client struct {
	conn *websocket.Conn
	role string
}

// Hub tracks one live websocket connection per user, tagged with the
// role from the user's token. A reconnect replaces and closes the
// previous connection.
type Hub struct {
	connections map[int64]client
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]client),
	}
}

func (h *Hub) Register(userID int64, role string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if old, exists := h.connections[userID]; exists && old.conn != nil {
		_ = old.conn.Close()
	}

	h.connections[userID] = client{conn: conn, role: role}
}

func (h *Hub) Unregister(userID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if c, exists := h.connections[userID]; exists {
		if c.conn != nil {
			_ = c.conn.Close()
		}
		delete(h.connections, userID)
	}
}

func (h *Hub) SendToUser(userID int64, message interface{}) bool {
	h.mutex.RLock()
	c, exists := h.connections[userID]
	h.mutex.RUnlock()

	if !exists || c.conn == nil {
		return false
	}

	if err := c.conn.WriteJSON(message); err != nil {
		h.Unregister(userID)
		return false
	}

	return true
}

func (h *Hub) IsOnline(userID int64) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	_, exists := h.connections[userID]
	return exists
}

// ConnectedUsers snapshots the ids of everyone currently online.
func (h *Hub) ConnectedUsers() []int64 {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	ids := make([]int64, 0, len(h.connections))
	for id := range h.connections {
		ids = append(ids, id)
	}
	return ids
}

// ConnectedByRole snapshots the ids of online users holding the role.
func (h *Hub) ConnectedByRole(role string) []int64 {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	ids := make([]int64, 0, len(h.connections))
	for id, c := range h.connections {
		if c.role == role {
			ids = append(ids, id)
		}
	}
	return ids
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for id, c := range h.connections {
		if c.conn != nil {
			_ = c.conn.Close()
		}
		delete(h.connections, id)
	}
}
