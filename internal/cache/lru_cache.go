package cache

import (
	"sync"

	"github.com/SystemBuilders/chains/internal/list"
)

var _ Cache = (*LRUCache)(nil)

// LRUCache implements a cache. It uses a doubly linked list of keys as
// the primary data structure along with a hash-map from each key to its
// value and its node in the list.
//
// The starting element in the linked list will always be
// the most recently used element in the cache and will be
// maintained that way by all the operating functions:
// * At every insertion, the MRU is maintained at the Head of the DLL.
// * After every access, the node is moved to the MRU position in the DLL.
// * Eviction removes the Tail of the DLL, which is the LRU element.
// Every operation runs in constant time.
type LRUCache struct {
	capacity int
	m        map[string]entry
	dll      *list.DoublyLinkedList[string]
	mu       sync.Mutex
}

type entry struct {
	value float64
	node  *list.Node[string]
}

// NewLRUCache creates a new LRUCache of provided size. Capacities below
// one are raised to one.
func NewLRUCache(capacity int) *LRUCache {
	if capacity < 1 {
		capacity = 1
	}
	return &LRUCache{
		capacity: capacity,
		m:        make(map[string]entry),
		dll:      list.NewDoublyLinkedList[string](),
	}
}

// GetElement gets an element from the cache. Whenever an element is
// retrieved from the cache, it's bumped to the MRU position in the DLL.
//
// Error is returned only if the element doesn't exist in the cache.
func (lru *LRUCache) GetElement(key string) (float64, error) {
	lru.mu.Lock()
	defer lru.mu.Unlock()

	e, ok := lru.m[key]
	if !ok {
		return 0, ErrElementDoesntExist
	}
	if err := lru.dll.MoveToFront(e.node); err != nil {
		return 0, err
	}
	return e.value, nil
}

// PutElement inserts an element in the cache.
// All insertions occur at the head node of the DLL.
//
// Removal of the LRU is done by removing the tail node,
// making place for a new node.
func (lru *LRUCache) PutElement(key string, value float64) error {
	lru.mu.Lock()
	defer lru.mu.Unlock()

	if _, ok := lru.m[key]; ok {
		return ErrElementAlreadyExists
	}

	if lru.dll.Count() == lru.capacity {
		tail := lru.dll.Tail()
		lruKey, _ := tail.Data()
		if err := lru.dll.Remove(tail); err != nil {
			return err
		}
		delete(lru.m, lruKey)
	}

	node, err := lru.dll.PushFront(key)
	if err != nil {
		return err
	}
	lru.m[key] = entry{value: value, node: node}
	return nil
}

// RemoveElement deletes an element from the cache.
func (lru *LRUCache) RemoveElement(key string) error {
	lru.mu.Lock()
	defer lru.mu.Unlock()

	e, ok := lru.m[key]
	if !ok {
		return ErrElementDoesntExist
	}
	if err := lru.dll.Remove(e.node); err != nil {
		return err
	}
	delete(lru.m, key)
	return nil
}

// Capacity returns the max capacity of the cache.
func (lru *LRUCache) Capacity() int {
	return lru.capacity
}

// Size returns the number of elements in the cache.
func (lru *LRUCache) Size() int {
	lru.mu.Lock()
	defer lru.mu.Unlock()
	return lru.dll.Count()
}

// Full returns true if the cache is full, else returns false.
func (lru *LRUCache) Full() bool {
	return lru.Size() == lru.capacity
}

// Keys returns the keys in decreasing order of recent use.
func (lru *LRUCache) Keys() []string {
	lru.mu.Lock()
	defer lru.mu.Unlock()
	return lru.dll.Values()
}
