package stack

import (
	"testing"

	"github.com/SystemBuilders/chains/internal/list"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	t.Run("pop yields pushes in reverse", func(t *testing.T) {
		s := New[int]()
		pushes := []int{61, 31, 15, 99, 34}
		for _, p := range pushes {
			require.NoError(t, s.Push(p))
		}
		assert.Equal(t, len(pushes), s.Count())

		for i := len(pushes) - 1; i >= 0; i-- {
			got, err := s.Pop()
			require.NoError(t, err)
			assert.Equal(t, pushes[i], got)
		}
		assert.True(t, s.IsEmpty())
	})

	t.Run("pop on empty stack fails with ErrStackEmpty", func(t *testing.T) {
		s := New[string]()

		_, err := s.Pop()
		require.ErrorIs(t, err, ErrStackEmpty)
		assert.NotErrorIs(t, err, list.ErrIndexOutOfBounds)

		_, err = s.Peek()
		require.ErrorIs(t, err, ErrStackEmpty)
	})

	t.Run("peek does not remove", func(t *testing.T) {
		s := New[string]()
		require.NoError(t, s.Push("a"))
		require.NoError(t, s.Push("b"))

		got, err := s.Peek()
		require.NoError(t, err)
		assert.Equal(t, "b", got)
		assert.Equal(t, 2, s.Count())
		assert.Equal(t, []string{"b", "a"}, s.Values())
	})

	t.Run("usable after draining and clearing", func(t *testing.T) {
		s := New[int]()
		require.NoError(t, s.Push(1))
		_, err := s.Pop()
		require.NoError(t, err)

		require.NoError(t, s.Push(15))
		require.NoError(t, s.Push(99))
		assert.Equal(t, 2, s.Count())

		s.Clear()
		assert.Equal(t, 0, s.Count())
		s.Clear()

		require.NoError(t, s.Push(34))
		got, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, 34, got)
	})

	t.Run("absent data is rejected", func(t *testing.T) {
		s := New[*int]()
		require.ErrorIs(t, s.Push(nil), list.ErrInvalidArgument)
		assert.True(t, s.IsEmpty())
	})
}
