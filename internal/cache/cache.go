package cache

// Cache describes an entity of a cache of evaluated expressions.
type Cache interface {
	// GetElement gets the result stored for the key. Getting the
	// element makes it the most recently used element in the cache.
	// If the element doesn't exist in the cache, an error is raised.
	GetElement(key string) (float64, error)
	// PutElement inserts an element into the cache. Putting the element
	// makes it the most recently used element in the cache, evicting the
	// least recently used one if the cache is full.
	// If the element already exists in the cache, an error is raised.
	PutElement(key string, value float64) error
	// RemoveElement deletes the element from the cache.
	RemoveElement(key string) error
	// Capacity returns the max capacity of the cache.
	Capacity() int
	// Size returns the number of elements currently in the cache.
	Size() int
	// Full checks whether the cache is full or not. It returns true if the
	// cache is full.
	Full() bool
}
