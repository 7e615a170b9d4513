package list

// LinkedList describes a positional container backed by a chain of nodes.
//
// Implementations are not safe for concurrent use. Callers sharing a list
// between goroutines must synchronise all access, reads included.
type LinkedList[T any] interface {
	// Count returns the number of nodes in the list.
	Count() int
	// IsEmpty returns true if the list holds no nodes.
	IsEmpty() bool
	// Head returns the first node, or nil if the list is empty.
	Head() *Node[T]
	// Append adds data after the last node and returns it. Absent data
	// is rejected with ErrInvalidArgument.
	Append(data T) (T, error)
	// Insert places data in front of the node currently at index and
	// returns it. The index must be in [0, Count()), so Insert never
	// grows the list past its end; use Append for that.
	Insert(data T, index int) (T, error)
	// Delete removes the node at index.
	Delete(index int) error
	// Get returns the data at index.
	Get(index int) (T, error)
	// Clear removes every node from the list.
	Clear()
	// Values returns the payloads from head to tail.
	Values() []T
}
