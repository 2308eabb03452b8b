package events

import "sync"

const subscriberBuffer = 16

// Hub fans events out to SSE subscribers. Slow subscribers miss events instead of blocking.
type Hub struct {
	mu      sync.Mutex
	clients map[chan string]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[chan string]struct{})}
}

func (h *Hub) Subscribe() chan string {
	ch := make(chan string, subscriberBuffer)
	h.mu.Lock()
	h.clients[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan string) {
	h.mu.Lock()
	if _, ok := h.clients[ch]; ok {
		delete(h.clients, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// Publish returns how many subscribers received evt.
func (h *Hub) Publish(evt string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	sent := 0
	for ch := range h.clients {
		select {
		case ch <- evt:
			sent++
		default:
		}
	}
	return sent
}

// Notify marshals data into an event of type typ and publishes it.
func (h *Hub) Notify(typ string, data any) {
	if h == nil {
		return
	}
	h.Publish(MakeEvent("", typ, data))
}

func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
