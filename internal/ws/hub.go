package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/coder/websocket"
)

const writeTimeout = 3 * time.Second

// Hub fans dungeon patches out to every connected viewer. Viewers whose write fails are
// closed and dropped.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *Hub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast writes message to all viewers and returns how many received it.
func (h *Hub) Broadcast(ctx context.Context, message []byte) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	delivered := 0
	for conn := range h.clients {
		wctx, cancel := context.WithTimeout(ctx, writeTimeout)
		err := conn.Write(wctx, websocket.MessageText, message)
		cancel()
		if err != nil {
			_ = conn.Close(websocket.StatusGoingAway, "write failed")
			delete(h.clients, conn)
			continue
		}
		delivered++
	}
	return delivered
}

func (h *Hub) BroadcastJSON(ctx context.Context, v any) (int, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return 0, err
	}
	return h.Broadcast(ctx, data), nil
}

// Send writes v to a single connection, used for the greeting snapshot.
func Send(ctx context.Context, conn *websocket.Conn, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	wctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return conn.Write(wctx, websocket.MessageText, data)
}
