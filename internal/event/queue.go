// Package event carries per-tick messages between gameplay phases.
// Each message kind has its own queue; a phase drains the queues it consumes.
package event

// Queue is a FIFO of messages produced and consumed within a tick.
// It is not safe for concurrent use; the simulation is single threaded.
type Queue[T any] struct {
	items []T
	spare []T
}

// Push appends a message.
func (q *Queue[T]) Push(v T) {
	q.items = append(q.items, v)
}

// Drain returns all pending messages in push order and empties the queue.
// The returned slice is valid until the second following Drain.
func (q *Queue[T]) Drain() []T {
	out := q.items
	q.items, q.spare = q.spare[:0], out
	return out
}

// Len returns the number of pending messages.
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// Clear drops all pending messages.
func (q *Queue[T]) Clear() {
	q.items = q.items[:0]
}
