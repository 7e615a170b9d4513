// Package rpn evaluates arithmetic expressions written in reverse Polish
// (postfix) notation using a linked stack of operands.
package rpn

import (
	"errors"
	"math"
	"strconv"
	"strings"

	perrors "github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/SystemBuilders/chains/internal/stack"
)

// Operators understood by the evaluator. "_" is floor division of the
// integer parts of its operands.
const Operators = "+-*/_^"

// Evaluator reduces postfix expressions over a Stack.
//
// The stack is reused between calls, so an Evaluator must not be shared
// between goroutines without external locking.
type Evaluator struct {
	log   zerolog.Logger
	stack *stack.Stack[float64]
}

// NewEvaluator returns an Evaluator that logs its reductions to log.
func NewEvaluator(log zerolog.Logger) *Evaluator {
	return &Evaluator{
		log:   log,
		stack: stack.New[float64](),
	}
}

// EvaluateString splits expr on whitespace and evaluates the tokens.
func (e *Evaluator) EvaluateString(expr string) (float64, error) {
	return e.Evaluate(strings.Fields(expr))
}

// Evaluate pushes operands onto the stack and, for each operator, pops
// the right and then the left operand and pushes the result. Exactly one
// value must remain once all tokens are consumed. The stack is always
// empty when Evaluate returns.
func (e *Evaluator) Evaluate(tokens []string) (float64, error) {
	defer e.stack.Clear()

	if len(tokens) == 0 {
		return 0, ErrEmptyExpression
	}

	for _, token := range tokens {
		if IsOperator(token) {
			if err := e.reduce(token); err != nil {
				return 0, err
			}
			continue
		}

		operand, err := strconv.ParseFloat(token, 64)
		if err != nil {
			e.
				log.
				Debug().
				Str("token", token).
				Msg("rejected token")
			return 0, perrors.Wrapf(ErrInvalidToken, "%q", token)
		}
		if err := e.stack.Push(operand); err != nil {
			return 0, err
		}
	}

	result, err := e.stack.Pop()
	if err != nil {
		return 0, ErrEmptyExpression
	}
	if !e.stack.IsEmpty() {
		return 0, perrors.Wrapf(ErrTooManyOperands, "%d values left", e.stack.Count()+1)
	}
	return result, nil
}

// reduce applies operator to the two values on top of the stack.
func (e *Evaluator) reduce(operator string) error {
	right, err := e.pop(operator)
	if err != nil {
		return err
	}
	left, err := e.pop(operator)
	if err != nil {
		return err
	}

	result := Calculate(left, right, operator)
	e.
		log.
		Debug().
		Str("operator", operator).
		Float64("left", left).
		Float64("right", right).
		Float64("result", result).
		Msg("reduced")
	return e.stack.Push(result)
}

func (e *Evaluator) pop(operator string) (float64, error) {
	v, err := e.stack.Pop()
	if errors.Is(err, stack.ErrStackEmpty) {
		return 0, perrors.Wrapf(ErrInsufficientOperands, "%q", operator)
	}
	return v, err
}

// IsOperator returns true if token is one of Operators.
func IsOperator(token string) bool {
	return len(token) == 1 && strings.Contains(Operators, token)
}

// Calculate applies operator to left and right. A zero divisor is treated
// as 1 for both divisions. Unknown operators yield 0.
func Calculate(left, right float64, operator string) float64 {
	switch operator {
	case "+":
		return left + right
	case "-":
		return left - right
	case "*":
		return left * right
	case "/":
		if right == 0 {
			right = 1
		}
		return left / right
	case "_":
		divisor := int64(right)
		if divisor == 0 {
			divisor = 1
		}
		return float64(floorDiv(int64(left), divisor))
	case "^":
		return math.Pow(left, right)
	}
	return 0
}

func floorDiv(x, y int64) int64 {
	q := x / y
	if (x%y != 0) && ((x < 0) != (y < 0)) {
		q--
	}
	return q
}

// FormatResult renders v in its shortest decimal form.
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
