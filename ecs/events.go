package ecs

import "github.com/go-gl/mathgl/mgl64"

// EventType identifies an event payload.
type EventType string

const (
	// EventPointerMotion carries a PointerMotion payload.
	EventPointerMotion EventType = "pointer_motion"
)

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// PointerMotion is one relative pointer movement reported by the host.
type PointerMotion struct {
	Delta mgl64.Vec2
}

// EventQueue is a simple FIFO queue. Anything left at the end of a frame is
// discarded.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// PushPointerMotion queues a pointer delta for the next input sample.
func (q *EventQueue) PushPointerMotion(delta mgl64.Vec2) {
	q.Push(Event{Type: EventPointerMotion, Data: PointerMotion{Delta: delta}})
}

// Drain removes and returns the events of type t, keeping the rest queued.
func (q *EventQueue) Drain(t EventType) []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	var out []Event
	kept := q.items[:0]
	for _, evt := range q.items {
		if evt.Type == t {
			out = append(out, evt)
			continue
		}
		kept = append(kept, evt)
	}
	clear(q.items[len(kept):])
	q.items = kept
	return out
}

// Len reports how many events are queued.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
