// Package broadcast fans live gate events out to connected admin viewers.
//
// Delivery is best-effort and at-most-once: there is no replay, no
// acknowledgement, and a subscriber whose buffer is full simply misses the
// event. Viewers must re-read the log list on connect.
package broadcast

import (
	"sync"

	"gatepass/internal/metrics"
	"gatepass/internal/model"
)

// EventTypeGate tags gate log notifications.
const EventTypeGate = "gateEvent"

// DefaultBuffer is the per-subscriber channel capacity used when a caller
// asks for zero or less.
const DefaultBuffer = 64

// Event is the message envelope pushed to viewers.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// NewGateEvent wraps a gate log in an Event.
func NewGateEvent(log *model.GateLog) Event {
	return Event{Type: EventTypeGate, Payload: log}
}

// Publisher is the narrow interface the gate log recorder depends on.
type Publisher interface {
	Publish(evt Event)
}

// Subscription is one viewer's event channel.
type Subscription struct {
	C <-chan Event

	ch chan Event
}

// Hub owns the set of live subscriptions. Construct one per process and
// pass it explicitly to its users.
type Hub struct {
	mu      sync.RWMutex
	subs    map[*Subscription]struct{}
	closed  bool
	metrics *metrics.Metrics
}

var _ Publisher = (*Hub)(nil)

// NewHub creates an empty hub. m may be nil.
func NewHub(m *metrics.Metrics) *Hub {
	return &Hub{
		subs:    make(map[*Subscription]struct{}),
		metrics: m,
	}
}

// Subscribe registers a new subscriber with the given channel capacity.
// After Close, the returned subscription's channel is already closed.
func (h *Hub) Subscribe(buffer int) *Subscription {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	ch := make(chan Event, buffer)
	sub := &Subscription{C: ch, ch: ch}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(ch)
		return sub
	}
	h.subs[sub] = struct{}{}
	h.metrics.SetSubscribers(len(h.subs))
	return sub
}

// Unsubscribe removes sub and closes its channel. Calling it more than
// once is harmless.
func (h *Hub) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[sub]; !ok {
		return
	}
	delete(h.subs, sub)
	close(sub.ch)
	h.metrics.SetSubscribers(len(h.subs))
}

// Publish offers evt to every subscriber without blocking. Subscribers
// with a full buffer lose the event.
func (h *Hub) Publish(evt Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subs {
		select {
		case sub.ch <- evt:
		default:
			h.metrics.BroadcastDropped()
		}
	}
}

// Len returns the number of live subscribers.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close drops every subscriber and rejects new ones. Used on shutdown so
// stream handlers return.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for sub := range h.subs {
		close(sub.ch)
		delete(h.subs, sub)
	}
	h.metrics.SetSubscribers(0)
}
