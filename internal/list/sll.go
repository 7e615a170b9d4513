package list

import "github.com/pkg/errors"

// Assert that *SinglyLinkedList implements LinkedList.
var _ LinkedList[int] = (*SinglyLinkedList[int])(nil)

// SinglyLinkedList implements LinkedList with forward links only.
//
// Only the head is kept. Operations at the head are O(1); everything else,
// Append included, walks the chain from the head.
//
// The zero value is an empty list ready to use.
type SinglyLinkedList[T any] struct {
	count int
	head  *Node[T]
}

// NewSinglyLinkedList returns a new instance of an empty SinglyLinkedList.
func NewSinglyLinkedList[T any]() *SinglyLinkedList[T] {
	return &SinglyLinkedList[T]{}
}

// Count returns the number of nodes in the list.
func (sll *SinglyLinkedList[T]) Count() int {
	return sll.count
}

// IsEmpty returns true if the list holds no nodes.
func (sll *SinglyLinkedList[T]) IsEmpty() bool {
	return sll.count == 0
}

// Head returns the first node, or nil if the list is empty.
func (sll *SinglyLinkedList[T]) Head() *Node[T] {
	return sll.head
}

// Append walks to the last node and links a new node holding data after it.
func (sll *SinglyLinkedList[T]) Append(data T) (T, error) {
	if absent(data) {
		return data, errors.Wrap(ErrInvalidArgument, "append")
	}

	node := newNode(data)
	if sll.head == nil {
		sll.head = node
	} else {
		last := sll.head
		for last.next != nil {
			last = last.next
		}
		last.next = node
	}

	sll.count++
	return data, nil
}

// Insert splices a new node holding data immediately before the node
// currently at index.
func (sll *SinglyLinkedList[T]) Insert(data T, index int) (T, error) {
	if err := checkIndex(index, sll.count); err != nil {
		return data, err
	}
	if absent(data) {
		return data, errors.Wrap(ErrInvalidArgument, "insert")
	}

	node := newNode(data)
	if index == 0 {
		node.next = sll.head
		sll.head = node
	} else {
		prev, curr := sll.walk(index)
		prev.next = node
		node.next = curr
	}

	sll.count++
	return data, nil
}

// Delete removes the node at index.
func (sll *SinglyLinkedList[T]) Delete(index int) error {
	if err := checkIndex(index, sll.count); err != nil {
		return err
	}

	var removed *Node[T]
	if index == 0 {
		removed = sll.head
		sll.head = removed.next
	} else {
		var prev *Node[T]
		prev, removed = sll.walk(index)
		prev.next = removed.next
	}
	removed.release()

	sll.count--
	return nil
}

// Get returns the data held by the node at index.
func (sll *SinglyLinkedList[T]) Get(index int) (T, error) {
	if err := checkIndex(index, sll.count); err != nil {
		var zero T
		return zero, err
	}
	_, node := sll.walk(index)
	return node.data, nil
}

// Clear removes every node, releasing each one on the way.
func (sll *SinglyLinkedList[T]) Clear() {
	for node := sll.head; node != nil; {
		next := node.next
		node.release()
		node = next
	}
	sll.head = nil
	sll.count = 0
}

// Values returns the payloads from head to tail.
func (sll *SinglyLinkedList[T]) Values() []T {
	values := make([]T, 0, sll.count)
	for node := sll.head; node != nil; node = node.next {
		values = append(values, node.data)
	}
	return values
}

// walk follows next links from the head and returns the node at index
// along with the node before it. prev is nil when index is 0. The index
// must already be checked.
func (sll *SinglyLinkedList[T]) walk(index int) (prev, curr *Node[T]) {
	curr = sll.head
	for idx := 0; idx < index; idx++ {
		prev = curr
		curr = curr.next
	}
	return prev, curr
}
