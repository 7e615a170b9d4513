// Package queue provides a FIFO queue on top of a doubly-linked list.
package queue

import (
	"github.com/SystemBuilders/chains/internal/list"
)

// Queue is a first-in-first-out container. Elements join at the tail of
// the underlying DoublyLinkedList and leave from its head, both in
// constant time.
//
// A Queue is not safe for concurrent use.
type Queue[T any] struct {
	queue *list.DoublyLinkedList[T]
}

// New returns an empty Queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{
		queue: list.NewDoublyLinkedList[T](),
	}
}

// NewOf returns a Queue holding data as its only element.
func NewOf[T any](data T) (*Queue[T], error) {
	dll, err := list.NewDoublyLinkedListOf(data)
	if err != nil {
		return nil, err
	}
	return &Queue[T]{queue: dll}, nil
}

// Enqueue adds data to the tail of the queue and returns it.
func (q *Queue[T]) Enqueue(data T) (T, error) {
	return q.queue.Append(data)
}

// Dequeue removes and returns the data at the head of the queue. It
// returns ErrQueueEmpty if the queue has no elements.
func (q *Queue[T]) Dequeue() (T, error) {
	data, err := q.PeekHead()
	if err != nil {
		return data, err
	}
	if err := q.queue.Delete(0); err != nil {
		var zero T
		return zero, err
	}
	return data, nil
}

// PeekHead returns the data at the head of the queue without removing it.
func (q *Queue[T]) PeekHead() (T, error) {
	if q.queue.IsEmpty() {
		var zero T
		return zero, ErrQueueEmpty
	}
	return q.queue.Get(0)
}

// PeekTail returns the data at the tail of the queue without removing it.
func (q *Queue[T]) PeekTail() (T, error) {
	if q.queue.IsEmpty() {
		var zero T
		return zero, ErrQueueEmpty
	}
	return q.queue.Get(q.queue.Count() - 1)
}

// Count returns the number of elements in the queue.
func (q *Queue[T]) Count() int {
	return q.queue.Count()
}

// IsEmpty returns true if the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.queue.IsEmpty()
}

// Clear empties the queue.
func (q *Queue[T]) Clear() {
	q.queue.Clear()
}

// Values returns the elements from head to tail.
func (q *Queue[T]) Values() []T {
	return q.queue.Values()
}
