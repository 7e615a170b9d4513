package rpn

// Error provides constant error strings to the evaluator.
type Error string

func (e Error) Error() string { return string(e) }

// Constant errors.
// Rule of thumb, all errors start with a small letter and end with no full stop.
const (
	ErrEmptyExpression      = Error("expression is empty")
	ErrInvalidToken         = Error("token is neither an operand nor an operator")
	ErrInsufficientOperands = Error("operator is missing an operand")
	ErrTooManyOperands      = Error("expression leaves more than one value")
)
