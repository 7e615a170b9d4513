package list

import "reflect"

// Node is the single entity of a linked list. It holds one payload and
// the links to its neighbours. The prev link is only used by the
// DoublyLinkedList.
//
// A node belongs to exactly one list. Once it is removed from that list
// its links are severed and its payload is cleared.
type Node[T any] struct {
	data  T
	valid bool
	next  *Node[T]
	prev  *Node[T]

	// owner is set while the node is linked into a DoublyLinkedList.
	owner *DoublyLinkedList[T]
}

func newNode[T any](data T) *Node[T] {
	return &Node[T]{
		data:  data,
		valid: true,
	}
}

// Data returns the payload of the node. The second return value is false
// if the node has been removed from its list.
func (n *Node[T]) Data() (T, bool) {
	return n.data, n.valid
}

// Next returns the node after this one, nil at the end of the list.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the node before this one, nil at the start of the list.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// eraseLinks drops all references to other nodes.
func (n *Node[T]) eraseLinks() {
	n.next = nil
	n.prev = nil
}

// release strips the node of its links and its payload. Called on every
// node that leaves a list.
func (n *Node[T]) release() {
	var zero T
	n.eraseLinks()
	n.data = zero
	n.valid = false
	n.owner = nil
}

// absent reports whether data is a nil value that must not be stored.
func absent[T any](data T) bool {
	v := reflect.ValueOf(any(data))
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return v.IsNil()
	}
	return false
}
