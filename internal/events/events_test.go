package events

import (
	"testing"
)

func TestHub_DeliversToAllSubscribers(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	ch1 := hub.Subscribe()
	ch2 := hub.Subscribe()

	hub.Publish(Event{Type: EventRecordsChanged, RecordID: "rec-1"})

	for i, ch := range []<-chan Event{ch1, ch2} {
		select {
		case event := <-ch:
			if event.Type != EventRecordsChanged || event.RecordID != "rec-1" {
				t.Errorf("subscriber %d got %+v", i, event)
			}
			if event.Timestamp.IsZero() {
				t.Errorf("subscriber %d: timestamp must be stamped", i)
			}
		default:
			t.Errorf("subscriber %d received nothing", i)
		}
	}
}

func TestHub_PublishNeverBlocks(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	_ = hub.Subscribe() // never drained

	// More events than the subscriber buffer holds; Publish must not block.
	for i := 0; i < 100; i++ {
		hub.Publish(Event{Type: EventRecordsChanged})
	}
}

func TestHub_CloseClosesSubscribers(t *testing.T) {
	hub := NewHub()
	ch := hub.Subscribe()

	hub.Close()

	if _, ok := <-ch; ok {
		t.Error("subscriber channel must be closed")
	}

	// publishing after close is a no-op, not a panic
	hub.Publish(Event{Type: EventSettingsChanged})
	hub.Close()
}

func TestHub_SubscribeAfterClose(t *testing.T) {
	hub := NewHub()
	hub.Close()

	ch := hub.Subscribe()
	if _, ok := <-ch; ok {
		t.Error("subscription after close must return a closed channel")
	}
}
