// Package stack provides a LIFO stack on top of a singly-linked list.
package stack

import (
	"github.com/SystemBuilders/chains/internal/list"
)

// Stack is a last-in-first-out container. The top of the stack is the head
// of the underlying SinglyLinkedList, so every operation is O(1).
//
// A Stack is not safe for concurrent use.
type Stack[T any] struct {
	stack *list.SinglyLinkedList[T]
}

// New returns an empty Stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{
		stack: list.NewSinglyLinkedList[T](),
	}
}

// Push places data on top of the stack. Absent data is rejected with
// list.ErrInvalidArgument.
func (s *Stack[T]) Push(data T) error {
	var err error
	if s.stack.IsEmpty() {
		// Insert only addresses existing positions.
		_, err = s.stack.Append(data)
	} else {
		_, err = s.stack.Insert(data, 0)
	}
	return err
}

// Pop removes and returns the data on top of the stack. It returns
// ErrStackEmpty if there is nothing to pop.
func (s *Stack[T]) Pop() (T, error) {
	data, err := s.Peek()
	if err != nil {
		return data, err
	}
	if err := s.stack.Delete(0); err != nil {
		var zero T
		return zero, err
	}
	return data, nil
}

// Peek returns the data on top of the stack without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if s.stack.IsEmpty() {
		var zero T
		return zero, ErrStackEmpty
	}
	return s.stack.Get(0)
}

// Count returns the number of elements on the stack.
func (s *Stack[T]) Count() int {
	return s.stack.Count()
}

// IsEmpty returns true if the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return s.stack.IsEmpty()
}

// Clear empties the stack.
func (s *Stack[T]) Clear() {
	s.stack.Clear()
}

// Values returns the elements from the top of the stack down.
func (s *Stack[T]) Values() []T {
	return s.stack.Values()
}
