package internal

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/intlfmt/pkg/cache"
	"github.com/dmitrymomot/intlfmt/pkg/i18n"
)

// Engine kinds used in cache keys.
const (
	kindDateTime = "datetime"
	kindNumber   = "number"
	kindRelative = "relative"
	kindPlural   = "plural"
	kindMessage  = "message"
)

// KeyFunc derives a cache key from an engine kind and its constructor
// arguments. Logically equal arguments must produce equal keys.
type KeyFunc func(kind string, args ...any) (string, error)

// JSONKey serializes the arguments with encoding/json. Map keys are sorted by
// the encoder, so two equal option bags always produce the same key.
func JSONKey(kind string, args ...any) (string, error) {
	b, err := json.Marshal(args)
	if err != nil {
		return "", fmt.Errorf("cache key for %s: %w", kind, err)
	}
	return kind + ":" + string(b), nil
}

// Factories memoizes engine construction. Engines are built once per
// distinct (kind, constructor arguments) and reused for the lifetime of the
// store. A Factories value is shared by every formatter derived from the one
// that created it.
type Factories struct {
	registry   *i18n.Registry
	store      cache.Store[any]
	keyFunc    KeyFunc
	ctors      Constructors
	onEvict    func(kind string)
	namespace  string
	maxEngines int
}

// FactoriesOption configures Factories.
type FactoriesOption func(*Factories) error

// WithConstructors replaces engine constructors. Nil fields keep the defaults.
func WithConstructors(c Constructors) FactoriesOption {
	return func(f *Factories) error {
		f.ctors = c
		return nil
	}
}

// WithKeyFunc sets the cache key derivation.
func WithKeyFunc(fn KeyFunc) FactoriesOption {
	return func(f *Factories) error {
		if fn == nil {
			return ErrNilKeyFunc
		}
		f.keyFunc = fn
		return nil
	}
}

// WithStore sets the backing store. Several Factories may share one store;
// each keeps its entries apart under its own namespace.
func WithStore(s cache.Store[any]) FactoriesOption {
	return func(f *Factories) error {
		if s == nil {
			return ErrNilStore
		}
		f.store = s
		return nil
	}
}

// WithMaxEngines bounds the default store to n engines, evicting the least
// recently used one when full. Zero means unbounded. Ignored with WithStore.
func WithMaxEngines(n int) FactoriesOption {
	return func(f *Factories) error {
		if n < 0 {
			return fmt.Errorf("%w: %d", ErrInvalidMaxEngines, n)
		}
		f.maxEngines = n
		return nil
	}
}

// WithEvictHook calls fn with the engine kind each time the default store
// drops one of this Factories' engines. Ignored with WithStore.
func WithEvictHook(fn func(kind string)) FactoriesOption {
	return func(f *Factories) error {
		f.onEvict = fn
		return nil
	}
}

// NewFactories creates an engine cache bound to reg.
func NewFactories(reg *i18n.Registry, opts ...FactoriesOption) (*Factories, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}

	f := &Factories{
		registry:  reg,
		keyFunc:   JSONKey,
		namespace: uuid.NewString(),
	}
	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	if f.store == nil {
		mem := cache.NewMemory[any](cache.WithMaxEntries(f.maxEngines))
		if f.onEvict != nil {
			mem.SetEvictCallback(func(key string, _ any) {
				f.onEvict(f.kindOf(key))
			})
		}
		f.store = mem
	}
	f.ctors = f.ctors.withDefaults()

	return f, nil
}

// Registry returns the locale data registry the engines are built against.
func (f *Factories) Registry() *i18n.Registry {
	return f.registry
}

// Len returns the number of cached engines, across all Factories sharing
// the store.
func (f *Factories) Len() int {
	return f.store.Len()
}

// Stats reports hits, misses and entries of the backing store. Stores
// without counters report only the entry count.
func (f *Factories) Stats() cache.Stats {
	if s, ok := f.store.(interface{ Stats() cache.Stats }); ok {
		return s.Stats()
	}
	return cache.Stats{Entries: f.store.Len()}
}

// kindOf recovers the engine kind from a namespaced JSONKey-style key.
func (f *Factories) kindOf(key string) string {
	key = strings.TrimPrefix(key, f.namespace+":")
	kind, _, _ := strings.Cut(key, ":")
	return kind
}

// DateTimeFormat returns the date/time engine for locale and opts.
func (f *Factories) DateTimeFormat(locale string, opts i18n.Options) (DateTimeEngine, error) {
	return getOrBuild(f, kindDateTime, func() (DateTimeEngine, error) {
		return f.ctors.DateTime(f.registry, locale, opts)
	}, locale, opts)
}

// NumberFormat returns the number engine for locale and opts.
func (f *Factories) NumberFormat(locale string, opts i18n.Options) (NumberEngine, error) {
	return getOrBuild(f, kindNumber, func() (NumberEngine, error) {
		return f.ctors.Number(f.registry, locale, opts)
	}, locale, opts)
}

// RelativeFormat returns the relative-time engine for locale and opts.
func (f *Factories) RelativeFormat(locale string, opts i18n.Options) (RelativeEngine, error) {
	return getOrBuild(f, kindRelative, func() (RelativeEngine, error) {
		return f.ctors.Relative(f.registry, locale, opts)
	}, locale, opts)
}

// PluralFormat returns the plural engine for locale and opts.
func (f *Factories) PluralFormat(locale string, opts i18n.Options) (PluralEngine, error) {
	return getOrBuild(f, kindPlural, func() (PluralEngine, error) {
		return f.ctors.Plural(locale, opts)
	}, locale, opts)
}

// MessageFormat returns the parsed message for pattern in locale.
func (f *Factories) MessageFormat(pattern, locale string, formats i18n.Formats, opts i18n.MessageOptions) (MessageEngine, error) {
	return getOrBuild(f, kindMessage, func() (MessageEngine, error) {
		return f.ctors.Message(f.registry, pattern, locale, formats, opts)
	}, pattern, locale, formats, opts)
}

func getOrBuild[E any](f *Factories, kind string, build func() (E, error), args ...any) (E, error) {
	var zero E

	key, err := f.keyFunc(kind, args...)
	if err != nil {
		return zero, err
	}

	v, err := cache.GetOrCreate(f.store, f.namespace+":"+key, func() (any, error) {
		e, err := build()
		if err != nil {
			return nil, err
		}
		return e, nil
	})
	if err != nil {
		return zero, err
	}

	e, ok := v.(E)
	if !ok {
		return zero, fmt.Errorf("intlfmt: cached %s engine has type %T", kind, v)
	}
	return e, nil
}
