package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LRUCache(t *testing.T) {
	lruCache := NewLRUCache(3)

	require.NoError(t, lruCache.PutElement("1 1 +", 2))
	require.NoError(t, lruCache.PutElement("2 2 +", 4))
	assert.Equal(t, []string{"2 2 +", "1 1 +"}, lruCache.Keys())

	got, err := lruCache.GetElement("1 1 +")
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)
	assert.Equal(t, []string{"1 1 +", "2 2 +"}, lruCache.Keys())

	require.NoError(t, lruCache.PutElement("3 3 +", 6))
	assert.True(t, lruCache.Full())

	// LRU Cache is full, so the tail element
	// must be deleted on insertion of a fourth.
	require.NoError(t, lruCache.PutElement("4 4 +", 8))
	assert.Equal(t, []string{"4 4 +", "3 3 +", "1 1 +"}, lruCache.Keys())
	_, err = lruCache.GetElement("2 2 +")
	require.ErrorIs(t, err, ErrElementDoesntExist)

	require.ErrorIs(t, lruCache.PutElement("4 4 +", 8), ErrElementAlreadyExists)

	require.NoError(t, lruCache.RemoveElement("3 3 +"))
	assert.Equal(t, 2, lruCache.Size())
	assert.False(t, lruCache.Full())
	require.ErrorIs(t, lruCache.RemoveElement("3 3 +"), ErrElementDoesntExist)

	// Getting the MRU element leaves the order alone.
	_, err = lruCache.GetElement("4 4 +")
	require.NoError(t, err)
	assert.Equal(t, []string{"4 4 +", "1 1 +"}, lruCache.Keys())
}

func Test_LRUCacheCapacity(t *testing.T) {
	lruCache := NewLRUCache(0)
	assert.Equal(t, 1, lruCache.Capacity())

	require.NoError(t, lruCache.PutElement("a", 1))
	require.NoError(t, lruCache.PutElement("b", 2))
	assert.Equal(t, []string{"b"}, lruCache.Keys())

	require.NoError(t, lruCache.RemoveElement("b"))
	assert.Equal(t, 0, lruCache.Size())
	require.NoError(t, lruCache.PutElement("c", 3))
	assert.Equal(t, 1, lruCache.Size())
}

func Test_LRUCacheRecencyOrder(t *testing.T) {
	lruCache := NewLRUCache(4)
	for i, key := range []string{"a", "b", "c", "d"} {
		require.NoError(t, lruCache.PutElement(key, float64(i)))
	}
	assert.Equal(t, []string{"d", "c", "b", "a"}, lruCache.Keys())

	// Touch the tail, then a middle entry.
	for _, key := range []string{"a", "c"} {
		_, err := lruCache.GetElement(key)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"c", "a", "d", "b"}, lruCache.Keys())

	require.NoError(t, lruCache.RemoveElement("a"))
	assert.Equal(t, []string{"c", "d", "b"}, lruCache.Keys())

	require.NoError(t, lruCache.PutElement("e", 4))
	require.NoError(t, lruCache.PutElement("f", 5))
	assert.Equal(t, []string{"f", "e", "c", "d"}, lruCache.Keys())
	_, err := lruCache.GetElement("b")
	require.ErrorIs(t, err, ErrElementDoesntExist)

	got, err := lruCache.GetElement("d")
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
	assert.Equal(t, []string{"d", "f", "e", "c"}, lruCache.Keys())
}
