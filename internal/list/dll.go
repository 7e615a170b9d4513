package list

import "github.com/pkg/errors"

// Assert that *DoublyLinkedList implements LinkedList.
var _ LinkedList[int] = (*DoublyLinkedList[int])(nil)

// DoublyLinkedList implements LinkedList.
//
// All nodes have a prev and a next link except the head and the tail node.
// The list keeps a pointer to both ends so that operations at either end
// are O(1), and positional access walks from whichever end is closer to
// the index.
//
// The zero value is an empty list ready to use.
type DoublyLinkedList[T any] struct {
	count int
	head  *Node[T]
	tail  *Node[T]
}

// NewDoublyLinkedList returns a new instance of an empty DoublyLinkedList.
func NewDoublyLinkedList[T any]() *DoublyLinkedList[T] {
	return &DoublyLinkedList[T]{}
}

// NewDoublyLinkedListOf returns a DoublyLinkedList whose only node holds data.
func NewDoublyLinkedListOf[T any](data T) (*DoublyLinkedList[T], error) {
	dll := NewDoublyLinkedList[T]()
	if _, err := dll.Append(data); err != nil {
		return nil, err
	}
	return dll, nil
}

// Count returns the number of nodes in the list.
func (dll *DoublyLinkedList[T]) Count() int {
	return dll.count
}

// IsEmpty returns true if the list holds no nodes.
func (dll *DoublyLinkedList[T]) IsEmpty() bool {
	return dll.count == 0
}

// Head returns the first node, or nil if the list is empty.
func (dll *DoublyLinkedList[T]) Head() *Node[T] {
	return dll.head
}

// Tail returns the last node, or nil if the list is empty. It is the same
// node as Head when the list holds exactly one node.
func (dll *DoublyLinkedList[T]) Tail() *Node[T] {
	return dll.tail
}

// Append links a new node holding data after the current tail.
func (dll *DoublyLinkedList[T]) Append(data T) (T, error) {
	if absent(data) {
		return data, errors.Wrap(ErrInvalidArgument, "append")
	}

	node := newNode(data)
	node.owner = dll
	if dll.tail == nil {
		dll.head = node
		dll.tail = node
	} else {
		node.prev = dll.tail
		dll.tail.next = node
		dll.tail = node
	}

	dll.count++
	return data, nil
}

// Insert splices a new node holding data immediately before the node
// currently at index.
func (dll *DoublyLinkedList[T]) Insert(data T, index int) (T, error) {
	if err := checkIndex(index, dll.count); err != nil {
		return data, err
	}
	if absent(data) {
		return data, errors.Wrap(ErrInvalidArgument, "insert")
	}

	node := newNode(data)
	node.owner = dll
	if index == 0 {
		node.next = dll.head
		dll.head.prev = node
		dll.head = node
	} else {
		at := dll.nodeAt(index)
		node.prev = at.prev
		node.next = at
		at.prev.next = node
		at.prev = node
	}

	dll.count++
	return data, nil
}

// Delete removes the node at index. The removed node is stripped of its
// links and payload before it is dropped.
func (dll *DoublyLinkedList[T]) Delete(index int) error {
	if err := checkIndex(index, dll.count); err != nil {
		return err
	}

	var removed *Node[T]
	switch {
	case index == 0:
		removed = dll.head
	case index == dll.count-1:
		removed = dll.tail
	default:
		removed = dll.nodeAt(index)
	}
	dll.unlink(removed)
	removed.release()

	dll.count--
	return nil
}

// PushFront links a new node holding data before the current head and
// returns it. Unlike Insert it accepts an empty list.
func (dll *DoublyLinkedList[T]) PushFront(data T) (*Node[T], error) {
	if absent(data) {
		return nil, errors.Wrap(ErrInvalidArgument, "push front")
	}

	node := newNode(data)
	node.owner = dll
	dll.linkFront(node)
	dll.count++
	return node, nil
}

// Remove unlinks node from the list in constant time and releases it.
// The node must currently belong to this list.
func (dll *DoublyLinkedList[T]) Remove(node *Node[T]) error {
	if err := dll.checkOwner(node); err != nil {
		return errors.Wrap(err, "remove")
	}

	dll.unlink(node)
	node.release()
	dll.count--
	return nil
}

// MoveToFront relinks node as the head of the list in constant time.
// The node must currently belong to this list.
func (dll *DoublyLinkedList[T]) MoveToFront(node *Node[T]) error {
	if err := dll.checkOwner(node); err != nil {
		return errors.Wrap(err, "move to front")
	}
	if node == dll.head {
		return nil
	}

	dll.unlink(node)
	dll.linkFront(node)
	return nil
}

func (dll *DoublyLinkedList[T]) checkOwner(node *Node[T]) error {
	if node == nil || node.owner != dll {
		return ErrInvalidArgument
	}
	return nil
}

// linkFront makes a detached node the head. The count is left alone.
func (dll *DoublyLinkedList[T]) linkFront(node *Node[T]) {
	node.prev = nil
	node.next = dll.head
	if dll.head != nil {
		dll.head.prev = node
	} else {
		dll.tail = node
	}
	dll.head = node
}

// unlink detaches node from its neighbours and fixes up both ends. The
// count is left alone.
func (dll *DoublyLinkedList[T]) unlink(node *Node[T]) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		dll.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		dll.tail = node.prev
	}
	node.eraseLinks()
}

// Get returns the data held by the node at index.
func (dll *DoublyLinkedList[T]) Get(index int) (T, error) {
	if err := checkIndex(index, dll.count); err != nil {
		var zero T
		return zero, err
	}
	return dll.nodeAt(index).data, nil
}

// Clear removes every node, releasing each one on the way.
func (dll *DoublyLinkedList[T]) Clear() {
	for node := dll.head; node != nil; {
		next := node.next
		node.release()
		node = next
	}
	dll.head = nil
	dll.tail = nil
	dll.count = 0
}

// Values returns the payloads from head to tail.
func (dll *DoublyLinkedList[T]) Values() []T {
	values := make([]T, 0, dll.count)
	for node := dll.head; node != nil; node = node.next {
		values = append(values, node.data)
	}
	return values
}

// ReverseValues returns the payloads from tail to head.
func (dll *DoublyLinkedList[T]) ReverseValues() []T {
	values := make([]T, 0, dll.count)
	for node := dll.tail; node != nil; node = node.prev {
		values = append(values, node.data)
	}
	return values
}

// traversalEntryPoint returns the end of the list closer to index. The
// midpoint goes to the head.
func (dll *DoublyLinkedList[T]) traversalEntryPoint(index int) *Node[T] {
	if index > dll.count/2 {
		return dll.tail
	}
	return dll.head
}

// nodeAt walks to the node at index. The index must already be checked.
func (dll *DoublyLinkedList[T]) nodeAt(index int) *Node[T] {
	node := dll.traversalEntryPoint(index)
	if node == dll.head {
		for idx := 0; idx < index; idx++ {
			node = node.next
		}
		return node
	}
	for idx := dll.count - 1; idx > index; idx-- {
		node = node.prev
	}
	return node
}
