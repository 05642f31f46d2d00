package internal

import (
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/dmitrymomot/intlfmt/pkg/i18n"
)

// Formatter formats dates, times, numbers, relative times, plural
// categories and messages for one resolved locale.
//
// A Formatter is immutable after construction except for its clock, which
// SetNow may change. It is safe for concurrent use.
type Formatter struct {
	settings  *settings
	factories *Factories
	cfg       Config

	mu    sync.RWMutex
	fixed time.Time
	clock func() time.Time
}

// New creates a Formatter for locale. An empty locale selects the default
// locale. A locale without registry data falls back to the default locale.
//
// Example:
//
//	f, err := intlfmt.New("de-DE",
//	    intlfmt.WithMessages(catalogs["de"]),
//	    intlfmt.WithLogger(log),
//	)
func New(locale string, opts ...Option) (*Formatter, error) {
	s := defaultSettings()
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return build(locale, s)
}

func build(locale string, s *settings) (*Formatter, error) {
	if locale == "" {
		locale = s.defaultLocale
	}

	factories := s.factories
	if factories == nil {
		var err error
		factories, err = NewFactories(s.registry, s.factoryOpts...)
		if err != nil {
			return nil, err
		}
	}

	f := &Formatter{
		settings:  s,
		factories: factories,
		cfg:       resolve(locale, s),
	}

	switch {
	case s.clock != nil:
		f.clock = s.clock
	case !s.initialNow.IsZero():
		f.fixed = s.initialNow
	default:
		// Stabilized at construction so one render pass agrees on "now".
		f.fixed = time.Now()
	}

	return f, nil
}

// ChangeLocale returns a new Formatter for locale. Settings not given in
// opts are inherited; presets merge by name and default messages merge by
// id. The engine cache is shared with f, and the new clock is frozen at
// f.Now() unless opts set one.
func (f *Formatter) ChangeLocale(locale string, opts ...Option) (*Formatter, error) {
	if locale == "" {
		return nil, ErrInvalidLocale
	}

	override := newSettings()
	for _, opt := range opts {
		if err := opt(override); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	s := f.settings.resolved(f.cfg).merge(override)
	if s.factories == nil && s.registry == f.factories.Registry() {
		s.factories = f.factories
	}
	if !s.clockSet {
		s.initialNow = f.Now()
	}

	return build(locale, s)
}

// Locale returns the resolved locale.
func (f *Formatter) Locale() string {
	return f.cfg.Locale
}

// Config returns the resolved configuration. Its maps are shared with the
// Formatter and must not be modified.
func (f *Formatter) Config() Config {
	return f.cfg
}

// Factories returns the engine cache.
func (f *Formatter) Factories() *Factories {
	return f.factories
}

// Now returns the reference time for relative formatting.
func (f *Formatter) Now() time.Time {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.clock != nil {
		return f.clock()
	}
	return f.fixed
}

// SetNow freezes the clock at t. The zero time switches to a live clock.
func (f *Formatter) SetNow(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if t.IsZero() {
		f.fixed = time.Time{}
		f.clock = time.Now
		return
	}
	f.fixed = t
	f.clock = nil
}

func (f *Formatter) state() state {
	return state{factories: f.factories, now: f.Now}
}

// Date formats value as a date. value may be a time.Time, epoch
// milliseconds or an RFC 3339 string. The "format" option selects a date
// preset.
func (f *Formatter) Date(value any, opts ...i18n.Options) string {
	return formatDate(f.cfg, f.state(), value, mergeOptions(opts))
}

// Time formats value as a time of day. Without hour, minute or second
// options it shows hours and minutes.
func (f *Formatter) Time(value any, opts ...i18n.Options) string {
	return formatTime(f.cfg, f.state(), value, mergeOptions(opts))
}

// Number formats a numeric value.
func (f *Formatter) Number(value any, opts ...i18n.Options) string {
	return formatNumber(f.cfg, f.state(), value, mergeOptions(opts))
}

// Relative formats value relative to Now, or to the "now" option.
func (f *Formatter) Relative(value any, opts ...i18n.Options) string {
	return formatRelative(f.cfg, f.state(), value, mergeOptions(opts))
}

// Plural returns the plural category of value ("one", "other", ...).
func (f *Formatter) Plural(value any, opts ...i18n.Options) string {
	return formatPlural(f.cfg, f.state(), value, mergeOptions(opts))
}

// Message formats the message described by desc. The result type depends
// on the configured message builder; the default builder returns a string.
func (f *Formatter) Message(desc i18n.MessageDescriptor, values ...i18n.M) any {
	out := formatMessage(f.cfg, f.state(), desc, mergeValues(values))
	if wrap := f.cfg.textWrapper(); wrap != nil {
		return wrap(out)
	}
	return out
}

// HTMLMessage formats a message after HTML-escaping every string value.
func (f *Formatter) HTMLMessage(desc i18n.MessageDescriptor, values ...i18n.M) any {
	return formatHTMLMessage(f.cfg, f.state(), desc, mergeValues(values))
}

// T formats the message with the given id and returns it as a string.
//
// Example:
//
//	f.T("cart.items", intlfmt.M{"count": 3})
func (f *Formatter) T(id string, values ...i18n.M) string {
	out := f.Message(i18n.MessageDescriptor{ID: id}, values...)
	if s, ok := out.(string); ok {
		return s
	}
	return fmt.Sprint(out)
}

func mergeOptions(opts []i18n.Options) i18n.Options {
	switch len(opts) {
	case 0:
		return nil
	case 1:
		return opts[0]
	}
	out := make(i18n.Options)
	for _, o := range opts {
		maps.Copy(out, o)
	}
	return out
}

func mergeValues(values []i18n.M) map[string]any {
	switch len(values) {
	case 0:
		return nil
	case 1:
		return values[0]
	}
	out := make(map[string]any)
	for _, m := range values {
		maps.Copy(out, m)
	}
	return out
}
