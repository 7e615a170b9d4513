package list

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAbsent(t *testing.T) {
	var (
		nilPtr   *int
		nilSlice []int
		nilFunc  func()
		nilChan  chan int
		nilErr   error
	)
	one := 1

	assert.True(t, absent(nilPtr))
	assert.True(t, absent(nilSlice))
	assert.True(t, absent(nilFunc))
	assert.True(t, absent(nilChan))
	assert.True(t, absent(nilErr))
	assert.True(t, absent[any](nil))

	assert.False(t, absent(0))
	assert.False(t, absent(""))
	assert.False(t, absent(&one))
	assert.False(t, absent([]int{}))
	assert.False(t, absent(struct{}{}))
	assert.False(t, absent[any](0))
	assert.False(t, absent[fmt.Stringer](time.Second))
}

func TestNodeRelease(t *testing.T) {
	a := newNode("a")
	b := newNode("b")
	a.next = b
	b.prev = a

	data, ok := a.Data()
	assert.True(t, ok)
	assert.Equal(t, "a", data)

	a.release()

	data, ok = a.Data()
	assert.False(t, ok)
	assert.Equal(t, "", data)
	assert.Nil(t, a.Next())
	assert.Nil(t, a.Prev())
}
