package cache

// nilSlot marks an absent link (no newer / no older entry) and an empty end of the list.
const nilSlot int32 = -1

// entry is one cache slot. Links are arena indices rather than pointers so
// the cache is the only owner of every entry.
//
// newer points toward the MRU end, older toward the LRU end.
type entry[K comparable, V any] struct {
	key   K
	value V
	newer int32
	older int32
}

// alloc stores a new entry and returns its slot, reusing a released slot when one is available.
func (c *Cache[K, V]) alloc(key K, value V) int32 {
	e := entry[K, V]{key: key, value: value, newer: nilSlot, older: nilSlot}
	if n := len(c.free); n > 0 {
		slot := c.free[n-1]
		c.free = c.free[:n-1]
		c.slots[slot] = e
		return slot
	}
	c.slots = append(c.slots, e)
	return int32(len(c.slots) - 1)
}

// release zeroes the slot so the cache no longer holds its key or value,
// and returns it to the free list.
func (c *Cache[K, V]) release(slot int32) {
	c.slots[slot] = entry[K, V]{newer: nilSlot, older: nilSlot}
	c.free = append(c.free, slot)
}

// unlink splices slot out of the recency list and fixes the list ends.
// The entry's own links are cleared.
func (c *Cache[K, V]) unlink(slot int32) {
	e := &c.slots[slot]
	switch {
	case slot == c.newest && slot == c.oldest:
		c.newest, c.oldest = nilSlot, nilSlot
	case slot == c.newest:
		c.newest = e.older
		c.slots[e.older].newer = nilSlot
	case slot == c.oldest:
		c.oldest = e.newer
		c.slots[e.newer].older = nilSlot
	default:
		c.slots[e.older].newer = e.newer
		c.slots[e.newer].older = e.older
	}
	e.newer, e.older = nilSlot, nilSlot
}

// pushNewest links a detached slot in at the MRU end.
func (c *Cache[K, V]) pushNewest(slot int32) {
	e := &c.slots[slot]
	e.newer = nilSlot
	e.older = c.newest
	if c.newest != nilSlot {
		c.slots[c.newest].newer = slot
	} else {
		c.oldest = slot
	}
	c.newest = slot
}

// promote moves slot to the MRU end. An entry that is already newest is left alone.
func (c *Cache[K, V]) promote(slot int32) {
	if slot == c.newest {
		return
	}
	c.unlink(slot)
	c.pushNewest(slot)
}
