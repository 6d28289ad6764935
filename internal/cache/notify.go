package cache

// Event is the kind of notification a Cache publishes.
type Event int

// EventCleared is published once at the end of Clear, after the cache is empty.
const EventCleared Event = iota + 1

func (e Event) String() string {
	switch e {
	case EventCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

type subscription struct {
	id int
	fn func(Event)
}

// subscribers is a registration-ordered callback list.
type subscribers struct {
	nextID int
	list   []subscription
}

func (s *subscribers) add(fn func(Event)) int {
	s.nextID++
	s.list = append(s.list, subscription{id: s.nextID, fn: fn})
	return s.nextID
}

func (s *subscribers) remove(id int) {
	for i, sub := range s.list {
		if sub.id == id {
			s.list = append(s.list[:i:i], s.list[i+1:]...)
			return
		}
	}
}

func (s *subscribers) publish(ev Event) {
	// Snapshot so a callback that cancels itself does not shift the walk.
	subs := append([]subscription(nil), s.list...)
	for _, sub := range subs {
		sub.fn(ev)
	}
}

// Subscribe registers fn to be called synchronously for each published event.
// Callbacks run in registration order. The returned cancel func removes the
// subscription and may be called more than once.
func (c *Cache[K, V]) Subscribe(fn func(Event)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	id := c.subs.add(fn)
	return func() { c.subs.remove(id) }
}
