package cache

import "errors"

var (
	// ErrNotFound is returned by Get for a missing key.
	ErrNotFound = errors.New("cache: entry not found")

	// ErrClosed is returned by writes to a closed store.
	ErrClosed = errors.New("cache: closed")

	// ErrEmptyKey is returned by GetOrCreate for an empty key.
	ErrEmptyKey = errors.New("cache: empty key")

	// ErrNilConstructor is returned by GetOrCreate without a constructor.
	ErrNilConstructor = errors.New("cache: nil constructor")
)
