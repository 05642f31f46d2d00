package cache

import (
	"fmt"

	"golang.org/x/sync/singleflight"
)

// Store is a keyed store for values that are expensive to build, such as
// locale formatter engines. Entries never expire on their own; they stay
// until deleted, cleared or evicted by a capacity limit.
type Store[V any] interface {
	// Get retrieves a value by key.
	// Returns ErrNotFound if the key does not exist.
	Get(key string) (V, error)

	// Set stores a value under key, replacing any previous value.
	Set(key string, value V) error

	// Delete removes a key from the store.
	Delete(key string) error

	// Has reports whether a key exists.
	Has(key string) bool

	// Len returns the number of stored entries.
	Len() int

	// Clear removes all entries.
	Clear() error

	// Close marks the store as closed. Later writes fail with ErrClosed.
	Close() error
}

// flightGroup is implemented by stores that carry their own singleflight group.
type flightGroup interface {
	flight() *singleflight.Group
}

var sfGroup singleflight.Group

// GetOrCreate returns the value stored under key, or calls fn to build it on
// a miss. Concurrent misses for the same key share one fn call.
//
// If fn returns an error, nothing is stored and the error is returned, so the
// next call retries the construction. A failed Set, such as on a closed store,
// is returned as an error too.
func GetOrCreate[V any](s Store[V], key string, fn func() (V, error)) (V, error) {
	var zero V
	switch {
	case key == "":
		return zero, ErrEmptyKey
	case fn == nil:
		return zero, ErrNilConstructor
	}

	if v, err := s.Get(key); err == nil {
		return v, nil
	}

	g := &sfGroup
	if fg, ok := s.(flightGroup); ok {
		g = fg.flight()
	}

	v, err, _ := g.Do(key, func() (any, error) {
		// Another caller may have stored the value while we waited.
		if v, ok := recheck(s, key); ok {
			return v, nil
		}
		val, err := fn()
		if err != nil {
			return nil, err
		}
		if err := s.Set(key, val); err != nil {
			return nil, fmt.Errorf("cache: store %q: %w", key, err)
		}
		return val, nil
	})
	if err != nil {
		return zero, err
	}

	return v.(V), nil
}

// peeker is implemented by stores that can read a key without counting it as
// a hit or a miss.
type peeker[V any] interface {
	peek(key string) (V, bool)
}

func recheck[V any](s Store[V], key string) (V, bool) {
	if p, ok := s.(peeker[V]); ok {
		return p.peek(key)
	}
	v, err := s.Get(key)
	return v, err == nil
}
