package cache

// Error provides constant error strings to the cache operations.
type Error string

func (e Error) Error() string { return string(e) }

// Constant errors.
// Rule of thumb, all errors start with a small letter and end with no full stop.
const (
	ErrElementDoesntExist   = Error("expression is not cached")
	ErrElementAlreadyExists = Error("expression is already cached")
)
