package realtime

import (
	"errors"
	"sync"
	"testing"
)

type fakeSubscriber struct {
	mu       sync.Mutex
	received []Message
	failWith error
	closed   bool
}

func (f *fakeSubscriber) WriteJSON(v interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	f.received = append(f.received, v.(Message))
	return nil
}

func (f *fakeSubscriber) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func TestHubPublishFansOutToAllSubscribers(t *testing.T) {
	t.Parallel()

	hub := NewHub("")
	a := &fakeSubscriber{}
	b := &fakeSubscriber{}
	hub.Subscribe(a)
	hub.Subscribe(b)

	hub.Publish("new_order", map[string]any{"id": 1})

	for _, sub := range []*fakeSubscriber{a, b} {
		if len(sub.received) != 1 {
			t.Fatalf("expected 1 message, got %d", len(sub.received))
		}
		if sub.received[0].Event != "new_order" {
			t.Fatalf("expected new_order event, got %q", sub.received[0].Event)
		}
	}
}

func TestHubDropsFailedSubscriber(t *testing.T) {
	t.Parallel()

	hub := NewHub("")
	healthy := &fakeSubscriber{}
	broken := &fakeSubscriber{failWith: errors.New("connection reset")}
	hub.Subscribe(healthy)
	hub.Subscribe(broken)

	hub.Publish("dashboard-update", nil)

	if hub.Count() != 1 {
		t.Fatalf("expected broken subscriber evicted, count = %d", hub.Count())
	}
	if !broken.closed {
		t.Fatal("expected broken subscriber to be closed")
	}

	// The survivor keeps receiving.
	hub.Publish("dashboard-update", nil)
	if len(healthy.received) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(healthy.received))
	}
}

func TestHubUnsubscribeStopsDelivery(t *testing.T) {
	t.Parallel()

	hub := NewHub("")
	sub := &fakeSubscriber{}
	hub.Subscribe(sub)
	hub.Unsubscribe(sub)

	hub.Publish("order_updated", nil)

	if len(sub.received) != 0 {
		t.Fatalf("expected no messages after unsubscribe, got %d", len(sub.received))
	}
	if hub.Count() != 0 {
		t.Fatalf("expected empty registry, count = %d", hub.Count())
	}
}
