package ctmc

import "container/heap"

// Completion is a service completion at a node.
type Completion struct {
	Time float64
	Node int
	ID   int64 // scheduling sequence number
}

// EventHeap is a priority queue of completions with deterministic ordering.
// Order by: time → node → ID.
type EventHeap struct {
	events []*Completion
}

// NewEventHeap creates an empty event heap.
func NewEventHeap() *EventHeap {
	h := &EventHeap{
		events: make([]*Completion, 0),
	}
	heap.Init(h)
	return h
}

// Len implements heap.Interface
func (h *EventHeap) Len() int {
	return len(h.events)
}

// Less implements heap.Interface
func (h *EventHeap) Less(i, j int) bool {
	ei, ej := h.events[i], h.events[j]
	if ei.Time != ej.Time {
		return ei.Time < ej.Time
	}
	if ei.Node != ej.Node {
		return ei.Node < ej.Node
	}
	return ei.ID < ej.ID
}

// Swap implements heap.Interface
func (h *EventHeap) Swap(i, j int) {
	h.events[i], h.events[j] = h.events[j], h.events[i]
}

// Push implements heap.Interface
func (h *EventHeap) Push(x interface{}) {
	h.events = append(h.events, x.(*Completion))
}

// Pop implements heap.Interface
func (h *EventHeap) Pop() interface{} {
	old := h.events
	n := len(old)
	item := old[n-1]
	h.events = old[0 : n-1]
	return item
}

// Schedule adds a completion to the heap
func (h *EventHeap) Schedule(c *Completion) {
	heap.Push(h, c)
}

// PopNext removes and returns the earliest completion, or nil when empty.
func (h *EventHeap) PopNext() *Completion {
	if h.Len() == 0 {
		return nil
	}
	return heap.Pop(h).(*Completion)
}

// Peek returns the earliest completion without removing it.
func (h *EventHeap) Peek() *Completion {
	if h.Len() == 0 {
		return nil
	}
	return h.events[0]
}
