package rpn

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	e := NewEvaluator(zerolog.Nop())

	tests := []struct {
		name string
		expr string
		want float64
	}{
		{"single operand", "42", 42},
		{"addition", "3 4 +", 7},
		{"chained", "3 4 + 2 *", 14},
		{"nested", "5 1 2 + 4 * + 3 -", 14},
		{"subtraction order", "10 4 -", 6},
		{"division", "9 2 /", 4.5},
		{"division by zero uses one", "9 0 /", 9},
		{"floor division", "7 2 _", 3},
		{"floor division negative", "-7 2 _", -4},
		{"floor division by zero uses one", "7 0 _", 7},
		{"power", "2 10 ^", 1024},
		{"negative operand", "-3 5 *", -15},
		{"extra whitespace", "  1\t2   + ", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.EvaluateString(tt.expr)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	e := NewEvaluator(zerolog.Nop())

	tests := []struct {
		name string
		expr string
		want error
	}{
		{"empty", "", ErrEmptyExpression},
		{"blank", "   ", ErrEmptyExpression},
		{"bad token", "3 x +", ErrInvalidToken},
		{"lone operator", "+", ErrInsufficientOperands},
		{"one operand short", "3 +", ErrInsufficientOperands},
		{"leftover operands", "1 2 3 +", ErrTooManyOperands},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.EvaluateString(tt.expr)
			require.ErrorIs(t, err, tt.want)
		})
	}

	// A failed evaluation leaves nothing behind for the next one.
	assert.True(t, e.stack.IsEmpty())
	got, err := e.EvaluateString("1 1 +")
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)
}

func TestIsOperator(t *testing.T) {
	for _, op := range []string{"+", "-", "*", "/", "_", "^"} {
		assert.True(t, IsOperator(op), op)
	}
	for _, tok := range []string{"", "-1", "++", "x", "%"} {
		assert.False(t, IsOperator(tok), tok)
	}
}

func TestFormatResult(t *testing.T) {
	assert.Equal(t, "14", FormatResult(14))
	assert.Equal(t, "4.5", FormatResult(4.5))
	assert.Equal(t, "-0.25", FormatResult(-0.25))
}
