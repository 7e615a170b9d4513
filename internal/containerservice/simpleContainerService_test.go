package containerservice

import (
	"sync"
	"testing"

	"github.com/oklog/ulid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SystemBuilders/chains/internal/queue"
	"github.com/SystemBuilders/chains/internal/rpn"
	"github.com/SystemBuilders/chains/internal/stack"
)

func newService() *SimpleContainerService {
	return NewSimpleContainerService(zerolog.Nop(), 4)
}

func TestStackContainer(t *testing.T) {
	cs := newService()

	id, err := cs.Create(KindStack)
	require.NoError(t, err)

	for _, v := range []string{"a", "b", "c"} {
		require.NoError(t, cs.Push(id, v))
	}

	desc, err := cs.Describe(KindStack, id)
	require.NoError(t, err)
	assert.Equal(t, Description{Count: 3, Values: []string{"c", "b", "a"}}, desc)

	top, err := cs.Peek(id)
	require.NoError(t, err)
	assert.Equal(t, "c", top)

	for _, want := range []string{"c", "b", "a"} {
		got, err := cs.Pop(id)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err = cs.Pop(id)
	require.ErrorIs(t, err, stack.ErrStackEmpty)

	require.ErrorIs(t, cs.Push(id, ""), ErrEmptyValue)

	require.NoError(t, cs.Push(id, "x"))
	require.NoError(t, cs.Clear(KindStack, id))
	desc, err = cs.Describe(KindStack, id)
	require.NoError(t, err)
	assert.Equal(t, 0, desc.Count)

	require.NoError(t, cs.Drop(KindStack, id))
	_, err = cs.Describe(KindStack, id)
	require.ErrorIs(t, err, ErrContainerDoesntExist)
}

func TestQueueContainer(t *testing.T) {
	cs := newService()

	id, err := cs.Create(KindQueue)
	require.NoError(t, err)

	for _, v := range []string{"a", "b", "c"} {
		require.NoError(t, cs.Enqueue(id, v))
	}

	head, err := cs.PeekHead(id)
	require.NoError(t, err)
	assert.Equal(t, "a", head)
	tail, err := cs.PeekTail(id)
	require.NoError(t, err)
	assert.Equal(t, "c", tail)

	for _, want := range []string{"a", "b", "c"} {
		got, err := cs.Dequeue(id)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err = cs.Dequeue(id)
	require.ErrorIs(t, err, queue.ErrQueueEmpty)

	require.NoError(t, cs.Drop(KindQueue, id))
	require.ErrorIs(t, cs.Drop(KindQueue, id), ErrContainerDoesntExist)
}

func TestKindsAreSeparate(t *testing.T) {
	cs := newService()

	stackID, err := cs.Create(KindStack)
	require.NoError(t, err)
	queueID, err := cs.Create(KindQueue)
	require.NoError(t, err)
	assert.NotEqual(t, stackID, queueID)

	require.ErrorIs(t, cs.Enqueue(stackID, "a"), ErrContainerDoesntExist)
	require.ErrorIs(t, cs.Push(queueID, "a"), ErrContainerDoesntExist)
	require.ErrorIs(t, cs.Push(ulid.ULID{}, "a"), ErrContainerDoesntExist)

	_, err = cs.Create(Kind("heap"))
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestConcurrentPushes(t *testing.T) {
	cs := newService()
	id, err := cs.Create(KindStack)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				assert.NoError(t, cs.Push(id, "v"))
			}
		}()
	}
	wg.Wait()

	desc, err := cs.Describe(KindStack, id)
	require.NoError(t, err)
	assert.Equal(t, 400, desc.Count)
}

func TestEvaluate(t *testing.T) {
	cs := newService()

	got, cached, err := cs.Evaluate("3 4 + 2 *")
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 14.0, got)

	got, cached, err = cs.Evaluate("  3 4 +   2 * ")
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, 14.0, got)

	_, _, err = cs.Evaluate("3 +")
	require.ErrorIs(t, err, rpn.ErrInsufficientOperands)
}
