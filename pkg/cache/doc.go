// Package cache provides a generic in-memory store with build-once semantics.
//
// It backs the formatter-factory cache: locale engines (number, date/time,
// relative, plural and message formatters) are expensive to construct, so
// each distinct constructor input is built once and then reused.
//
// # Usage
//
//	c := cache.NewMemory[*i18n.PluralFormat]()
//	pf, err := cache.GetOrCreate(c, "plural:en:{}", func() (*i18n.PluralFormat, error) {
//	    return i18n.NewPluralFormat("en", nil)
//	})
//
// GetOrCreate uses singleflight so concurrent misses for one key call the
// constructor only once. Failed constructions are not stored.
//
// # Eviction
//
// Entries never expire. WithMaxEntries turns on LRU eviction for callers that
// need a bound; the formatter cache leaves it unlimited.
package cache
