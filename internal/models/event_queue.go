package models

import (
	"container/heap"
	"sync"
)

// EventQueue is a priority queue of pending events ordered by timestamp.
// Ties are broken by arrival sequence, so events scheduled at the same
// virtual time are applied in the order they were enqueued regardless of
// heap internals.
type EventQueue struct {
	mutex   sync.Mutex
	events  eventHeap
	nextSeq uint64
}

type queuedEvent struct {
	event Event
	seq   uint64
}

// eventHeap implements heap.Interface over queued events.
type eventHeap []queuedEvent

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].event.Timestamp() != h[j].event.Timestamp() {
		return h[i].event.Timestamp() < h[j].event.Timestamp()
	}
	return h[i].seq < h[j].seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x interface{}) {
	*h = append(*h, x.(queuedEvent))
}

func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// NewEventQueue creates an empty EventQueue.
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make(eventHeap, 0)}
}

// Enqueue adds an event to the queue, assigning it the next arrival
// sequence number.
func (eq *EventQueue) Enqueue(event Event) {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()
	heap.Push(&eq.events, queuedEvent{event: event, seq: eq.nextSeq})
	eq.nextSeq++
}

// Dequeue removes and returns the earliest event, or nil if the queue is
// empty.
func (eq *EventQueue) Dequeue() Event {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()
	if len(eq.events) == 0 {
		return nil
	}
	return heap.Pop(&eq.events).(queuedEvent).event
}

// Peek returns the earliest event without removing it.
func (eq *EventQueue) Peek() Event {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()
	if len(eq.events) == 0 {
		return nil
	}
	return eq.events[0].event
}

// IsEmpty returns true if the queue has no pending events.
func (eq *EventQueue) IsEmpty() bool {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()
	return len(eq.events) == 0
}

// Len returns the number of pending events.
func (eq *EventQueue) Len() int {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()
	return len(eq.events)
}
