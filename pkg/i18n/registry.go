package i18n

import (
	"slices"
	"strings"
	"sync"
)

// Registry is a store of locale datasets keyed by normalized (lowercase)
// locale tag. Datasets are only ever added; a later registration for the
// same tag replaces the earlier one.
type Registry struct {
	data map[string]*LocaleData
	mu   sync.RWMutex
}

// NewRegistry creates a registry holding the given datasets.
func NewRegistry(data ...LocaleData) *Registry {
	r := &Registry{data: make(map[string]*LocaleData)}
	r.AddLocaleData(data...)
	return r
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return NewRegistry(BuiltinLocaleData()...)
})

// DefaultRegistry returns the process-wide registry, preloaded with the
// built-in datasets.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}

// AddLocaleData registers datasets in the default registry.
func AddLocaleData(data ...LocaleData) {
	DefaultRegistry().AddLocaleData(data...)
}

// HasLocaleData reports whether the default registry can serve locale.
func HasLocaleData(locale string) bool {
	return DefaultRegistry().HasLocaleData(locale)
}

// AddLocaleData registers datasets. Entries with an empty locale are skipped.
func (r *Registry) AddLocaleData(data ...LocaleData) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range data {
		key := normalizeLocale(d.Locale)
		if key == "" {
			continue
		}
		r.data[key] = &d
	}
}

// HasLocaleData reports whether the locale, or a dash-truncated ancestor of
// it, has a dataset with relative-time data. "en-US" is served by "en".
func (r *Registry) HasLocaleData(locale string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, candidate := range fallbackChain(locale) {
		if d, ok := r.data[candidate]; ok && d.Relative != nil {
			return true
		}
	}
	return false
}

// Lookup returns the first dataset registered along the locale's
// dash-truncation chain.
func (r *Registry) Lookup(locale string) (*LocaleData, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, candidate := range fallbackChain(locale) {
		if d, ok := r.data[candidate]; ok {
			return d, true
		}
	}
	return nil, false
}

// Locales returns the registered locale tags, sorted.
func (r *Registry) Locales() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.data))
	for k := range r.data {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// find walks the locale chain, following explicit parents, and returns the
// first dataset for which has reports true.
func (r *Registry) find(locale string, has func(*LocaleData) bool) (*LocaleData, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	queue := fallbackChain(locale)
	for len(queue) > 0 {
		candidate := queue[0]
		queue = queue[1:]
		if seen[candidate] {
			continue
		}
		seen[candidate] = true

		d, ok := r.data[candidate]
		if !ok {
			continue
		}
		if has(d) {
			return d, true
		}
		if d.Parent != "" {
			queue = append(fallbackChain(d.Parent), queue...)
		}
	}
	return nil, false
}

func (r *Registry) calendar(locale string) (*CalendarData, bool) {
	d, ok := r.find(locale, func(d *LocaleData) bool { return d.Calendar != nil })
	if !ok {
		return nil, false
	}
	return d.Calendar, true
}

func (r *Registry) number(locale string) (*NumberData, bool) {
	d, ok := r.find(locale, func(d *LocaleData) bool { return d.Number != nil })
	if !ok {
		return nil, false
	}
	return d.Number, true
}

func (r *Registry) relative(locale string) (*RelativeData, bool) {
	d, ok := r.find(locale, func(d *LocaleData) bool { return d.Relative != nil })
	if !ok {
		return nil, false
	}
	return d.Relative, true
}

func normalizeLocale(locale string) string {
	return strings.ToLower(strings.TrimSpace(locale))
}

// fallbackChain returns the locale followed by its dash-truncated
// ancestors: "zh-hant-tw" → ["zh-hant-tw", "zh-hant", "zh"].
func fallbackChain(locale string) []string {
	norm := normalizeLocale(locale)
	if norm == "" {
		return nil
	}
	parts := strings.Split(norm, "-")
	chain := make([]string, 0, len(parts))
	for i := len(parts); i > 0; i-- {
		chain = append(chain, strings.Join(parts[:i], "-"))
	}
	return chain
}
