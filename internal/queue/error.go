package queue

// Error provides constant error strings to the queue operations.
type Error string

func (e Error) Error() string { return string(e) }

// Constant errors.
// Rule of thumb, all errors start with a small letter and end with no full stop.
const (
	ErrQueueEmpty = Error("queue is empty")
)
