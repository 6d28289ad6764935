package cache

import (
	"strconv"
	"testing"
)

func benchKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = "key-" + strconv.Itoa(i)
	}
	return keys
}

// BenchmarkInsertPrune measures the insert path with the caller pruning back
// to the high-water mark after every write, the way a bounded cache is used.
func BenchmarkInsertPrune(b *testing.B) {
	keys := benchKeys(4096)
	c := New[string, int](Config{HighWaterMark: 1024})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := keys[i%len(keys)]
		if c.Contains(k) {
			_ = c.Replace(k, i)
		} else {
			_ = c.Insert(k, i)
		}
		c.Prune()
	}
}

func BenchmarkGetPromote(b *testing.B) {
	keys := benchKeys(1024)
	c := New[string, int](Config{})
	for i, k := range keys {
		_ = c.Insert(k, i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Get(keys[(i*7)%len(keys)])
	}
}

func BenchmarkPopOldestRefill(b *testing.B) {
	keys := benchKeys(1024)
	c := New[string, int](Config{})
	for i, k := range keys {
		_ = c.Insert(k, i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k, v, _ := c.PopOldestEntry()
		_ = c.Insert(k, v)
	}
}
