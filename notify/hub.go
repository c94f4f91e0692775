package notify

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks the open websocket connections per user and pushes new
// notifications to them as they are written.
type Hub struct {
	mu          sync.Mutex
	subscribers map[string][]*websocket.Conn
}

func NewHub() *Hub {
	return &Hub{subscribers: make(map[string][]*websocket.Conn)}
}

func (h *Hub) Add(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.subscribers[userID] = append(h.subscribers[userID], conn)
}

func (h *Hub) Remove(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns := h.subscribers[userID]
	newList := make([]*websocket.Conn, 0, len(conns))

	for _, c := range conns {
		if c != conn {
			newList = append(newList, c)
		}
	}

	h.subscribers[userID] = newList
}

// Push writes val to every open connection for the user. Connections that
// fail the write are closed and dropped.
func (h *Hub) Push(userID string, val []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns := h.subscribers[userID]
	newList := conns[:0]

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, val); err == nil {
			newList = append(newList, conn)
		} else {
			conn.Close()
		}
	}

	h.subscribers[userID] = newList
}
