package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventPathRecalculated = "path_recalculated"
	EventPathExhausted    = "path_exhausted"
	EventPopulationSpawn  = "population_spawned"
)

// PathEvent accompanies EventPathRecalculated and EventPathExhausted.
type PathEvent struct {
	Entity    Entity
	Waypoints int
	Fallback  bool
	Blocked   int
}

// EventQueue is a FIFO queue cleared at the end of every scheduler pass.
// Observers that want to keep events must Drain before the pass ends or be
// registered as the last system.
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

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len reports the number of queued events.
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
