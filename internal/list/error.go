package list

import "github.com/pkg/errors"

// Error provides constant error strings to the list operations.
type Error string

func (e Error) Error() string { return string(e) }

// Constant errors.
// Rule of thumb, all errors start with a small letter and end with no full stop.
const (
	ErrInvalidArgument  = Error("data cannot be absent")
	ErrIndexOutOfBounds = Error("index out of bounds")
)

// checkIndex reports ErrIndexOutOfBounds unless 0 <= index < count.
func checkIndex(index, count int) error {
	if index < 0 || index >= count {
		return errors.Wrapf(ErrIndexOutOfBounds, "index %d, count %d", index, count)
	}
	return nil
}
