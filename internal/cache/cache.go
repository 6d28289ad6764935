package cache

// DefaultHighWaterMark is the high-water mark used when Config leaves it unset.
const DefaultHighWaterMark = 2048

// Config controls the cache's advisory capacity.
//
// HighWaterMark <= 0 selects DefaultHighWaterMark. Crossing the mark never
// evicts on its own; it only makes CanExpire report true until Prune runs.
type Config struct {
	HighWaterMark int
}

// Cache is an in-memory key-value cache that keeps its entries in recency order.
//
// A map gives O(1) key lookup and a doubly-linked list threaded through an
// entry arena keeps least-recently-used to most-recently-used order.
// Both structures are updated together by every mutation.
//
// Eviction is the caller's job: check CanExpire and call Prune (or PopOldest).
//
// Cache is not safe for concurrent use. Callers sharing a Cache between
// goroutines must serialize every call, including check-then-act sequences.
type Cache[K comparable, V any] struct {
	index map[K]int32
	slots []entry[K, V]
	free  []int32

	oldest int32 // LRU end, nilSlot when empty
	newest int32 // MRU end, nilSlot when empty

	highWaterMark int
	subs          subscribers
}

// New constructs an empty cache.
//
// New never returns a nil Cache.
func New[K comparable, V any](cfg Config) *Cache[K, V] {
	hwm := cfg.HighWaterMark
	if hwm <= 0 {
		hwm = DefaultHighWaterMark
	}
	return &Cache[K, V]{
		index:         make(map[K]int32),
		oldest:        nilSlot,
		newest:        nilSlot,
		highWaterMark: hwm,
	}
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	return len(c.index)
}

// Contains reports whether key is cached. It does not change recency order.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.index[key]
	return ok
}

// Insert adds key as the most recently used entry.
//
// Insert fails with ErrDuplicateKey if key is already cached, leaving the
// cache untouched. It never evicts, even past the high-water mark.
func (c *Cache[K, V]) Insert(key K, value V) error {
	if _, ok := c.index[key]; ok {
		return duplicateKey(key)
	}

	slot := c.alloc(key, value)
	c.pushNewest(slot)
	c.index[key] = slot
	return nil
}

// Get returns the value for key and marks it most recently used.
func (c *Cache[K, V]) Get(key K) (V, error) {
	slot, ok := c.index[key]
	if !ok {
		var zero V
		return zero, missingKey(key)
	}

	c.promote(slot)
	return c.slots[slot].value, nil
}

// Replace overwrites the value for key in place and marks it most recently used.
func (c *Cache[K, V]) Replace(key K, value V) error {
	slot, ok := c.index[key]
	if !ok {
		return missingKey(key)
	}

	c.promote(slot)
	c.slots[slot].value = value
	return nil
}

// Remove deletes key and returns its value. Relative order of the remaining entries is kept.
func (c *Cache[K, V]) Remove(key K) (V, error) {
	slot, ok := c.index[key]
	if !ok {
		var zero V
		return zero, missingKey(key)
	}

	return c.removeSlot(slot), nil
}

// PopOldest removes the least recently used entry and returns its value.
func (c *Cache[K, V]) PopOldest() (V, error) {
	_, v, err := c.PopOldestEntry()
	return v, err
}

// PopOldestEntry is PopOldest that also returns the evicted key.
func (c *Cache[K, V]) PopOldestEntry() (K, V, error) {
	if c.oldest == nilSlot {
		var (
			zk K
			zv V
		)
		return zk, zv, ErrEmptyCache
	}

	key := c.slots[c.oldest].key
	return key, c.removeSlot(c.oldest), nil
}

// Clear drops every entry and then notifies subscribers with EventCleared.
func (c *Cache[K, V]) Clear() {
	clear(c.index)
	clear(c.slots)
	c.slots = c.slots[:0]
	c.free = c.free[:0]
	c.oldest, c.newest = nilSlot, nilSlot

	c.subs.publish(EventCleared)
}

func (c *Cache[K, V]) removeSlot(slot int32) V {
	e := c.slots[slot]
	c.unlink(slot)
	delete(c.index, e.key)
	c.release(slot)
	return e.value
}
