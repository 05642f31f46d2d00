package internal_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intlfmt/internal"
	"github.com/dmitrymomot/intlfmt/pkg/cache"
	"github.com/dmitrymomot/intlfmt/pkg/i18n"
)

func countingNumbers(builds *atomic.Int32) internal.FactoriesOption {
	return internal.WithConstructors(internal.Constructors{
		Number: func(reg *i18n.Registry, locale string, opts i18n.Options) (internal.NumberEngine, error) {
			builds.Add(1)
			return i18n.NewNumberFormat(reg, locale, opts)
		},
	})
}

func TestFactories(t *testing.T) {
	t.Parallel()

	t.Run("nil registry", func(t *testing.T) {
		t.Parallel()

		_, err := internal.NewFactories(nil)
		require.ErrorIs(t, err, internal.ErrNilRegistry)
	})

	t.Run("equal arguments reuse one engine", func(t *testing.T) {
		t.Parallel()

		var builds atomic.Int32
		f, err := internal.NewFactories(newRegistry(), countingNumbers(&builds))
		require.NoError(t, err)

		a, err := f.NumberFormat("en", i18n.Options{"style": "percent", "maximumFractionDigits": 1})
		require.NoError(t, err)
		b, err := f.NumberFormat("en", i18n.Options{"maximumFractionDigits": 1, "style": "percent"})
		require.NoError(t, err)

		require.Same(t, a, b)
		require.Equal(t, int32(1), builds.Load())

		_, err = f.NumberFormat("de", i18n.Options{"style": "percent", "maximumFractionDigits": 1})
		require.NoError(t, err)
		require.Equal(t, int32(2), builds.Load())
	})

	t.Run("concurrent misses build once", func(t *testing.T) {
		t.Parallel()

		var builds atomic.Int32
		f, err := internal.NewFactories(newRegistry(), countingNumbers(&builds))
		require.NoError(t, err)

		var wg sync.WaitGroup
		for range 32 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = f.NumberFormat("fr", nil)
			}()
		}
		wg.Wait()

		require.Equal(t, int32(1), builds.Load())
	})

	t.Run("constructor errors are not cached", func(t *testing.T) {
		t.Parallel()

		var builds atomic.Int32
		f, err := internal.NewFactories(newRegistry(), countingNumbers(&builds))
		require.NoError(t, err)

		_, err = f.NumberFormat("en", i18n.Options{"style": "currency"})
		require.ErrorIs(t, err, i18n.ErrInvalidOption)
		_, err = f.NumberFormat("en", i18n.Options{"style": "currency"})
		require.Error(t, err)

		require.Equal(t, int32(2), builds.Load())
		require.Zero(t, f.Len())
	})

	t.Run("custom key func", func(t *testing.T) {
		t.Parallel()

		f, err := internal.NewFactories(newRegistry(), internal.WithKeyFunc(func(kind string, args ...any) (string, error) {
			return kind, nil
		}))
		require.NoError(t, err)

		en, err := f.PluralFormat("en", nil)
		require.NoError(t, err)
		ar, err := f.PluralFormat("ar", nil)
		require.NoError(t, err)
		require.Same(t, en, ar)
	})

	t.Run("key func errors surface", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		f, err := internal.NewFactories(newRegistry(), internal.WithKeyFunc(func(string, ...any) (string, error) {
			return "", boom
		}))
		require.NoError(t, err)

		_, err = f.PluralFormat("en", nil)
		require.ErrorIs(t, err, boom)
	})

	t.Run("factories sharing a store stay apart", func(t *testing.T) {
		t.Parallel()

		store := cache.NewMemory[any]()
		var buildsA, buildsB atomic.Int32

		a, err := internal.NewFactories(newRegistry(), internal.WithStore(store), countingNumbers(&buildsA))
		require.NoError(t, err)
		b, err := internal.NewFactories(newRegistry(), internal.WithStore(store), countingNumbers(&buildsB))
		require.NoError(t, err)

		_, err = a.NumberFormat("en", nil)
		require.NoError(t, err)
		_, err = b.NumberFormat("en", nil)
		require.NoError(t, err)

		require.Equal(t, int32(1), buildsA.Load())
		require.Equal(t, int32(1), buildsB.Load())
		require.Equal(t, 2, store.Len())
	})

	t.Run("bounded store evicts", func(t *testing.T) {
		t.Parallel()

		var builds atomic.Int32
		f, err := internal.NewFactories(newRegistry(), internal.WithMaxEngines(1), countingNumbers(&builds))
		require.NoError(t, err)

		_, err = f.NumberFormat("en", nil)
		require.NoError(t, err)
		_, err = f.NumberFormat("de", nil)
		require.NoError(t, err)
		require.Equal(t, 1, f.Len())

		_, err = f.NumberFormat("en", nil)
		require.NoError(t, err)
		require.Equal(t, int32(3), builds.Load())

		stats := f.Stats()
		require.Equal(t, 1, stats.Entries)
		require.Zero(t, stats.Hits)
		require.Equal(t, uint64(3), stats.Misses)

		_, err = internal.NewFactories(newRegistry(), internal.WithMaxEngines(-1))
		require.ErrorIs(t, err, internal.ErrInvalidMaxEngines)
	})

	t.Run("evict hook gets engine kind", func(t *testing.T) {
		t.Parallel()

		var evicted []string
		f, err := internal.NewFactories(newRegistry(),
			internal.WithMaxEngines(1),
			internal.WithEvictHook(func(kind string) { evicted = append(evicted, kind) }),
		)
		require.NoError(t, err)

		_, err = f.NumberFormat("en", nil)
		require.NoError(t, err)
		_, err = f.PluralFormat("en", nil)
		require.NoError(t, err)
		require.Equal(t, []string{"number"}, evicted)
	})

	t.Run("nil options", func(t *testing.T) {
		t.Parallel()

		_, err := internal.NewFactories(newRegistry(), internal.WithKeyFunc(nil))
		require.ErrorIs(t, err, internal.ErrNilKeyFunc)
		_, err = internal.NewFactories(newRegistry(), internal.WithStore(nil))
		require.ErrorIs(t, err, internal.ErrNilStore)
	})
}

func TestFormatter_CacheReuse(t *testing.T) {
	t.Parallel()

	var builds atomic.Int32
	f, _ := newFormatter(t, "en", internal.WithFactoryOptions(countingNumbers(&builds)))

	for range 10 {
		require.Contains(t, f.Number(0.5, i18n.Options{"style": "percent"}), "50")
	}
	require.Equal(t, int32(1), builds.Load())

	derived, err := f.ChangeLocale("en-GB")
	require.NoError(t, err)
	derived.Number(0.5, i18n.Options{"style": "percent"})
	require.Equal(t, int32(2), builds.Load())

	same, err := f.ChangeLocale("en")
	require.NoError(t, err)
	same.Number(0.5, i18n.Options{"style": "percent", "color": "red"})
	require.Equal(t, int32(2), builds.Load())
}
