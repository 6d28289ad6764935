// Package cache implements a single-owner, in-memory LRU cache with caller-driven eviction.
//
// Goals for this package:
//   - Make the core data structures explicit (map index + doubly-linked recency list)
//   - Provide O(1) Insert/Get/Replace/Remove/PopOldest via the index and list links
//   - Keep entries in an arena addressed by slot index, so links never dangle
//   - Leave eviction to the caller: the high-water mark is advisory and only Prune evicts
//   - Publish a single "cleared" notification from Clear
//
// The cache is not safe for concurrent use.
package cache
