package stack

// Error provides constant error strings to the stack operations.
type Error string

func (e Error) Error() string { return string(e) }

// Constant errors.
// Rule of thumb, all errors start with a small letter and end with no full stop.
const (
	ErrStackEmpty = Error("stack is empty")
)
