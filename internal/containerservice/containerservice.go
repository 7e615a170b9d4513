package containerservice

import "github.com/oklog/ulid"

// Kind names the access discipline of a hosted container.
type Kind string

// These are the kinds of container the service can host.
const (
	KindStack Kind = "stack"
	KindQueue Kind = "queue"
)

// ContainerService describes a component that hosts named stacks and
// queues of strings. The containers themselves are single-writer
// structures; the service is the one that serialises access to them.
type ContainerService interface {
	// Create makes a new, empty container of the given kind and returns
	// its handle.
	Create(Kind) (ulid.ULID, error)
	// Drop removes a container and everything in it.
	Drop(Kind, ulid.ULID) error
	// Describe returns the number of elements in a container along with
	// the elements, top first for a stack and head first for a queue.
	Describe(Kind, ulid.ULID) (Description, error)
	// Clear empties a container without dropping it.
	Clear(Kind, ulid.ULID) error

	// Push places a value on top of a stack.
	Push(ulid.ULID, string) error
	// Pop removes and returns the value on top of a stack.
	Pop(ulid.ULID) (string, error)
	// Peek returns the value on top of a stack.
	Peek(ulid.ULID) (string, error)

	// Enqueue adds a value to the tail of a queue.
	Enqueue(ulid.ULID, string) error
	// Dequeue removes and returns the value at the head of a queue.
	Dequeue(ulid.ULID) (string, error)
	// PeekHead returns the value at the head of a queue.
	PeekHead(ulid.ULID) (string, error)
	// PeekTail returns the value at the tail of a queue.
	PeekTail(ulid.ULID) (string, error)
}

// Description is a snapshot of a hosted container.
type Description struct {
	Count  int      `json:"count"`
	Values []string `json:"values"`
}
