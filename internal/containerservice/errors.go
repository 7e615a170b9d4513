package containerservice

// Error provides constant error strings to the service and its handlers.
type Error string

func (e Error) Error() string { return string(e) }

// Constant errors.
// Rule of thumb, all errors start with a small letter and end with no full stop.
const (
	ErrContainerDoesntExist = Error("container doesn't exist")
	ErrUnknownKind          = Error("unknown container kind")
	ErrEmptyValue           = Error("value cannot be empty")
)
