package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strconv"

	"lrucache/internal/cache"
)

func main() {
	capacity := flag.Int("capacity", 3, "high-water mark for the demo cache (<= 0 uses the default)")
	keys := flag.Int("keys", 5, "number of keys to insert before pruning")
	flag.Parse()

	c := cache.New[string, string](cache.Config{HighWaterMark: *capacity})
	cancel := c.Subscribe(func(ev cache.Event) {
		log.Printf("notification: %s", ev)
	})
	defer cancel()

	log.Println("lrucache demo starting")
	log.Printf("config: highWaterMark=%d keys=%d", c.Capacity(), *keys)

	// -------------------------------------------------------------------
	// 1) Inserts never evict; the cache just reports it can expire.
	// -------------------------------------------------------------------
	for i := 0; i < *keys; i++ {
		k := "k" + strconv.Itoa(i)
		if err := c.Insert(k, "value-"+strconv.Itoa(i)); err != nil {
			log.Fatalf("insert %s: %v", k, err)
		}
	}
	log.Printf("after inserts: len=%d canExpire=%v keys (MRU->LRU)=%v", c.Len(), c.CanExpire(), c.KeysNewestFirst())

	// Duplicate inserts are rejected; Replace is the way to overwrite.
	if err := c.Insert("k0", "again"); errors.Is(err, cache.ErrDuplicateKey) {
		log.Printf("INSERT k0: %v", err)
	}

	// -------------------------------------------------------------------
	// 2) Access promotes: touch the oldest key so it survives the prune.
	// -------------------------------------------------------------------
	if v, err := c.Get("k0"); err == nil {
		log.Printf("GET k0 = %q (k0 -> MRU)", v)
	}
	if oldest, err := c.PeekLeastRecentKey(); err == nil {
		log.Printf("least recently used is now %s", oldest)
	}

	// -------------------------------------------------------------------
	// 3) Caller-driven eviction.
	// -------------------------------------------------------------------
	for c.CanExpire() {
		k, v, err := c.PopOldestEntry()
		if err != nil {
			log.Fatalf("pop oldest: %v", err)
		}
		log.Printf("evicted %s=%q", k, v)
	}
	log.Printf("after prune: len=%d keys (MRU->LRU)=%v", c.Len(), c.KeysNewestFirst())

	c.ForEachInOrder(func(v, k string, _ *cache.Cache[string, string]) {
		log.Printf("  LRU->MRU %s=%q", k, v)
	})

	// -------------------------------------------------------------------
	// 4) Clear fires the one notification the cache publishes.
	// -------------------------------------------------------------------
	c.Clear()
	if _, err := c.PopOldest(); errors.Is(err, cache.ErrEmptyCache) {
		log.Printf("POP on empty cache: %v", err)
	}

	fmt.Println("Done.")
}
