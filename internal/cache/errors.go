package cache

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateKey is returned by Insert when the key is already cached.
	// Use Replace to overwrite an existing entry.
	ErrDuplicateKey = errors.New("cache: duplicate key")

	// ErrMissingKey is returned by Get, Replace and Remove when the key is not cached.
	ErrMissingKey = errors.New("cache: missing key")

	// ErrEmptyCache is returned by the peek and pop operations on an empty cache.
	ErrEmptyCache = errors.New("cache: empty")
)

func duplicateKey[K comparable](key K) error {
	return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
}

func missingKey[K comparable](key K) error {
	return fmt.Errorf("%w: %v", ErrMissingKey, key)
}
