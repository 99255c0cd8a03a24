// Package events provides the in-process record stream: repositories publish
// a notification after every successful mutation, and the TUI reloads a full
// snapshot in response. There is no partial-diff contract - subscribers must
// always be able to regroup from a complete snapshot, which also gives the
// last-writer-wins semantics for concurrent status updates.
package events

import (
	"sync"
	"time"
)

// EventType indicates what kind of change occurred.
type EventType string

const (
	// EventRecordsChanged fires after any application record mutation.
	EventRecordsChanged EventType = "records_changed"
	// EventSettingsChanged fires after a settings save.
	EventSettingsChanged EventType = "settings_changed"
)

// Event is a change notification. It intentionally carries no record data:
// subscribers reload the full snapshot.
type Event struct {
	Type      EventType
	RecordID  string // which record was touched, empty for settings events
	Timestamp time.Time
}

// Publisher is the mutation-side half of the hub.
type Publisher interface {
	Publish(event Event)
}

// Hub is a simple fan-out of events to subscribers. Publish never blocks:
// a subscriber that has fallen behind misses intermediate events, which is
// fine because every event means "reload everything".
type Hub struct {
	mu     sync.Mutex
	subs   []chan Event
	closed bool
}

// Compile-time verification that *Hub implements Publisher
var _ Publisher = (*Hub)(nil)

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{}
}

// Subscribe registers a new subscriber and returns its channel.
// The channel is buffered so publishers never block on a slow consumer.
func (h *Hub) Subscribe() <-chan Event {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 16)
	if h.closed {
		close(ch)
		return ch
	}
	h.subs = append(h.subs, ch)
	return ch
}

// Publish delivers the event to all subscribers, dropping it for any
// subscriber whose buffer is full.
func (h *Hub) Publish(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	for _, ch := range h.subs {
		select {
		case ch <- event:
		default:
			// Subscriber is behind; the next event it does receive still
			// triggers a full snapshot reload.
		}
	}
}

// Close shuts down the hub and closes all subscriber channels.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for _, ch := range h.subs {
		close(ch)
	}
	h.subs = nil
}
