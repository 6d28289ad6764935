package cache_test

import (
	"errors"
	"fmt"

	"lrucache/internal/cache"
)

func Example() {
	c := cache.New[string, string](cache.Config{HighWaterMark: 2})
	c.Subscribe(func(ev cache.Event) {
		fmt.Println("event:", ev)
	})

	_ = c.Insert("user:1", "Alice")
	_ = c.Insert("user:2", "Bob")
	_ = c.Insert("user:3", "Carol")

	// touch user:1 so user:2 becomes least recently used
	if v, err := c.Get("user:1"); err == nil {
		fmt.Println("found:", v)
	}

	if err := c.Insert("user:1", "Alice again"); errors.Is(err, cache.ErrDuplicateKey) {
		fmt.Println("duplicate:", err)
	}

	// inserts never evict; pruning is up to the caller
	fmt.Println("over the mark:", c.CanExpire())
	fmt.Println("pruned:", c.Prune())
	fmt.Println("keys:", c.KeysNewestFirst())

	c.Clear()
	fmt.Println("len:", c.Len())

	// Output:
	// found: Alice
	// duplicate: cache: duplicate key: user:1
	// over the mark: true
	// pruned: 1
	// keys: [user:1 user:3]
	// event: cleared
	// len: 0
}
