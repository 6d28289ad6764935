package cache

// SetCapacity sets the high-water mark. It never evicts; call Prune for that.
// Negative values are treated as 0.
func (c *Cache[K, V]) SetCapacity(n int) {
	if n < 0 {
		n = 0
	}
	c.highWaterMark = n
}

// Capacity returns the current high-water mark.
func (c *Cache[K, V]) Capacity() int {
	return c.highWaterMark
}

// CanExpire reports whether the cache holds more entries than its high-water mark.
func (c *Cache[K, V]) CanExpire() bool {
	return c.Len() > c.highWaterMark
}

// Prune pops least recently used entries until the cache is at or under its
// high-water mark, and returns how many entries were popped.
//
// Popped values are dropped. Callers that need to dispose of values should
// loop over CanExpire and PopOldestEntry themselves.
func (c *Cache[K, V]) Prune() int {
	popped := 0
	for c.CanExpire() {
		if _, _, err := c.PopOldestEntry(); err != nil {
			break
		}
		popped++
	}
	return popped
}
