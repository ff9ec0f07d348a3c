package realtime

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Message is the wire format pushed to every live-view subscriber.
type Message struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Subscriber is satisfied by *websocket.Conn.
type Subscriber interface {
	WriteJSON(v interface{}) error
}

// Broadcaster is the single authoritative publish path. Mutating handlers
// call Publish after their transaction commits; the hub owns fan-out.
type Broadcaster interface {
	Publish(event string, data any)
}

// Hub keeps the registry of connected live-view clients. With a Redis address
// configured, publishes are relayed through a pub/sub channel so every server
// instance delivers to its own subscribers; otherwise fan-out is in-process.
type Hub struct {
	mu   sync.Mutex
	subs map[Subscriber]bool

	redis   *redis.Client
	channel string
}

func NewHub(redisAddr string) *Hub {
	h := &Hub{
		subs:    make(map[Subscriber]bool),
		channel: "orders:live",
	}
	if redisAddr != "" {
		h.redis = redis.NewClient(&redis.Options{Addr: redisAddr})
	}
	return h
}

func (h *Hub) Subscribe(s Subscriber) {
	h.mu.Lock()
	h.subs[s] = true
	h.mu.Unlock()
}

func (h *Hub) Unsubscribe(s Subscriber) {
	h.mu.Lock()
	delete(h.subs, s)
	h.mu.Unlock()
}

func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Publish never fails the mutation that triggered it; delivery errors are
// logged and the offending subscriber is dropped.
func (h *Hub) Publish(event string, data any) {
	msg := Message{Event: event, Data: data}

	if h.redis != nil {
		payload, err := json.Marshal(msg)
		if err != nil {
			log.Printf("realtime: marshal %s failed: %v", event, err)
			return
		}
		if err := h.redis.Publish(context.Background(), h.channel, payload).Err(); err != nil {
			log.Printf("realtime: redis publish %s failed: %v", event, err)
		}
		return
	}

	h.broadcast(msg)
}

// Run consumes the Redis relay channel and delivers to local subscribers.
// The subscribing instance receives its own publishes, so local delivery
// happens here and not in Publish. No-op without Redis.
func (h *Hub) Run(ctx context.Context) {
	if h.redis == nil {
		return
	}

	pubsub := h.redis.Subscribe(ctx, h.channel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var m Message
		if err := json.Unmarshal([]byte(msg.Payload), &m); err != nil {
			log.Printf("realtime: bad relay payload: %v", err)
			continue
		}
		h.broadcast(m)
	}
}

func (h *Hub) broadcast(msg Message) {
	h.mu.Lock()
	conns := make([]Subscriber, 0, len(h.subs))
	for s := range h.subs {
		conns = append(conns, s)
	}
	h.mu.Unlock()

	for _, s := range conns {
		if err := s.WriteJSON(msg); err != nil {
			log.Printf("realtime: dropping subscriber: %v", err)
			h.Unsubscribe(s)
			if closer, ok := s.(io.Closer); ok {
				closer.Close()
			}
		}
	}
}
