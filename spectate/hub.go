package spectate

import (
	"sync"
	"sync/atomic"
)

// Hub fans snapshots out to connected spectators
// Slow clients drop messages rather than stall the game loop
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}

	statClients *atomic.Int64
}

func NewHub(statClients *atomic.Int64) *Hub {
	if statClients == nil {
		statClients = &atomic.Int64{}
	}
	return &Hub{
		clients:     make(map[*Client]struct{}),
		statClients: statClients,
	}
}

// Register adds c to the broadcast set
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
	h.statClients.Store(int64(len(h.clients)))
}

// Unregister removes c and closes its send channel, safe to call twice
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.statClients.Store(int64(len(h.clients)))
}

// Broadcast queues msg for every client, returns the number of clients that accepted it
func (h *Hub) Broadcast(msg []byte) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	sent := 0
	for c := range h.clients {
		select {
		case c.send <- msg:
			sent++
		default:
		}
	}
	return sent
}

// CloseAll unregisters every client, ending their write pumps
func (h *Hub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
	h.statClients.Store(0)
}

func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
