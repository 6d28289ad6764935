package cache

// PeekLeastRecentValue returns the least recently used value without promoting it.
func (c *Cache[K, V]) PeekLeastRecentValue() (V, error) {
	if c.oldest == nilSlot {
		var zero V
		return zero, ErrEmptyCache
	}
	return c.slots[c.oldest].value, nil
}

// PeekLeastRecentKey returns the least recently used key without promoting it.
func (c *Cache[K, V]) PeekLeastRecentKey() (K, error) {
	if c.oldest == nilSlot {
		var zero K
		return zero, ErrEmptyCache
	}
	return c.slots[c.oldest].key, nil
}

// PeekMostRecentKey returns the most recently used key.
func (c *Cache[K, V]) PeekMostRecentKey() (K, error) {
	if c.newest == nilSlot {
		var zero K
		return zero, ErrEmptyCache
	}
	return c.slots[c.newest].key, nil
}

// ForEachInOrder calls visit for every entry from least to most recently used.
//
// visit receives the cache itself for read-only inspection; mutating the
// cache from inside visit is not supported.
func (c *Cache[K, V]) ForEachInOrder(visit func(value V, key K, cache *Cache[K, V])) {
	for slot := c.oldest; slot != nilSlot; slot = c.slots[slot].newer {
		e := &c.slots[slot]
		visit(e.value, e.key, c)
	}
}

// KeysNewestFirst returns keys in MRU -> LRU order.
func (c *Cache[K, V]) KeysNewestFirst() []K {
	out := make([]K, 0, c.Len())
	for slot := c.newest; slot != nilSlot; slot = c.slots[slot].older {
		out = append(out, c.slots[slot].key)
	}
	return out
}

// ValuesNewestFirst returns values in MRU -> LRU order.
func (c *Cache[K, V]) ValuesNewestFirst() []V {
	out := make([]V, 0, c.Len())
	for slot := c.newest; slot != nilSlot; slot = c.slots[slot].older {
		out = append(out, c.slots[slot].value)
	}
	return out
}
