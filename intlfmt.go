package intlfmt

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/intlfmt/internal"
	"github.com/dmitrymomot/intlfmt/pkg/i18n"
)

// Type aliases - public API
type (
	// Formatter formats values for one resolved locale.
	Formatter = internal.Formatter

	// Config is the resolved configuration of a Formatter.
	Config = internal.Config

	// Option configures a Formatter.
	Option = internal.Option

	// EnvConfig is the formatter configuration read from the environment.
	EnvConfig = internal.EnvConfig

	// Factories memoizes engine construction; shared by derived formatters.
	Factories = internal.Factories

	// FactoriesOption configures Factories.
	FactoriesOption = internal.FactoriesOption

	// Constructors builds the locale-sensitive engines.
	Constructors = internal.Constructors

	// KeyFunc derives engine cache keys.
	KeyFunc = internal.KeyFunc

	// Options is a bag of per-call format options.
	Options = i18n.Options

	// Formats maps a format kind to named presets.
	Formats = i18n.Formats

	// Presets maps a preset name to its options.
	Presets = i18n.Presets

	// M holds message placeholder values.
	M = i18n.M

	// MessageDescriptor identifies a message and carries its default text.
	MessageDescriptor = i18n.MessageDescriptor

	// LocaleData is one locale dataset.
	LocaleData = i18n.LocaleData

	// Registry stores locale datasets.
	Registry = i18n.Registry

	// BuilderFactory creates message output builders.
	BuilderFactory = i18n.BuilderFactory

	// Extractor reads a locale from a request, trying sources in order.
	Extractor = internal.Extractor

	// ExtractorSource reads a locale from one place in a request.
	ExtractorSource = internal.ExtractorSource
)

// Format kinds used as keys of Formats.
const (
	KindDate     = i18n.KindDate
	KindTime     = i18n.KindTime
	KindNumber   = i18n.KindNumber
	KindRelative = i18n.KindRelative
)

// Errors
var (
	ErrInvalidLocale     = internal.ErrInvalidLocale
	ErrNilErrorHandler   = internal.ErrNilErrorHandler
	ErrNilTextRenderer   = internal.ErrNilTextRenderer
	ErrNilMessageBuilder = internal.ErrNilMessageBuilder
	ErrNilRegistry       = internal.ErrNilRegistry
	ErrMissingLocaleData = internal.ErrMissingLocaleData
	ErrMissingPreset     = internal.ErrMissingPreset
	ErrMissingMessage    = internal.ErrMissingMessage
	ErrMissingMessageID  = internal.ErrMissingMessageID
	ErrFormatPanic       = internal.ErrFormatPanic
	ErrInvalidMaxEngines = internal.ErrInvalidMaxEngines
)

// Constructors

// New creates a Formatter for locale. An empty locale selects the default
// locale ("en" unless WithDefaultLocale is given).
//
// Example:
//
//	f, err := intlfmt.New("de",
//	    intlfmt.WithMessages(catalogs["de"]),
//	    intlfmt.WithLogger(log),
//	)
//	f.Number(1234.5) // "1.234,5"
func New(locale string, opts ...Option) (*Formatter, error) {
	return internal.New(locale, opts...)
}

// NewFactories creates an engine cache that several formatters can share
// through WithFactories.
func NewFactories(reg *Registry, opts ...FactoriesOption) (*Factories, error) {
	return internal.NewFactories(reg, opts...)
}

// LoadConfig reads INTL_DEFAULT_LOCALE, INTL_PRODUCTION, INTL_REQUIRE_OTHER
// and INTL_TEXT_COMPONENT. Pass cfg.Options() to New.
func LoadConfig() (EnvConfig, error) {
	return internal.LoadConfig()
}

// Locale data

// AddLocaleData registers datasets in the process-wide registry.
// Register data once at startup, before formatters are created.
func AddLocaleData(data ...LocaleData) {
	i18n.AddLocaleData(data...)
}

// HasLocaleData reports whether the process-wide registry can serve locale,
// directly or through a dash-truncated parent ("en-US" via "en").
func HasLocaleData(locale string) bool {
	return i18n.HasLocaleData(locale)
}

// DefineMessages validates a set of message descriptors.
func DefineMessages(descriptors map[string]MessageDescriptor) map[string]MessageDescriptor {
	return i18n.DefineMessages(descriptors)
}

// Options

// WithMessages sets the message catalog.
func WithMessages(messages map[string]string) Option {
	return internal.WithMessages(messages)
}

// WithFormats sets named format presets.
func WithFormats(formats Formats) Option {
	return internal.WithFormats(formats)
}

// WithDefaultLocale sets the fallback locale.
func WithDefaultLocale(locale string) Option {
	return internal.WithDefaultLocale(locale)
}

// WithDefaultFormats sets the presets used with the default locale.
func WithDefaultFormats(formats Formats) Option {
	return internal.WithDefaultFormats(formats)
}

// WithDefaultMessages sets the fallback catalog.
func WithDefaultMessages(messages map[string]string) Option {
	return internal.WithDefaultMessages(messages)
}

// WithRequireOther controls whether plural and select need an "other" branch.
func WithRequireOther(require bool) Option {
	return internal.WithRequireOther(require)
}

// WithMessageBuilder sets the message output builder, e.g.
// i18n.ArrayBuilderFactory or markup.ComponentBuilderFactory.
func WithMessageBuilder(factory BuilderFactory) Option {
	return internal.WithMessageBuilder(factory)
}

// WithErrorHandler sets the diagnostic hook.
func WithErrorHandler(fn func(msg string, err error)) Option {
	return internal.WithErrorHandler(fn)
}

// WithLogger reports diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return internal.WithLogger(l)
}

// WithTextComponent wraps Message results in the named element.
func WithTextComponent(name string) Option {
	return internal.WithTextComponent(name)
}

// WithTextRenderer post-processes Message results.
func WithTextRenderer(fn func(any) any) Option {
	return internal.WithTextRenderer(fn)
}

// WithProduction enables production mode.
func WithProduction(production bool) Option {
	return internal.WithProduction(production)
}

// WithRegistry sets the locale data registry.
func WithRegistry(reg *Registry) Option {
	return internal.WithRegistry(reg)
}

// WithInitialNow freezes the formatter clock at t.
func WithInitialNow(t time.Time) Option {
	return internal.WithInitialNow(t)
}

// WithClock reads the current time from fn on every call.
func WithClock(fn func() time.Time) Option {
	return internal.WithClock(fn)
}

// WithFactories shares an existing engine cache.
func WithFactories(f *Factories) Option {
	return internal.WithFactories(f)
}

// WithFactoryOptions configures the engine cache the formatter creates.
func WithFactoryOptions(opts ...FactoriesOption) Option {
	return internal.WithFactoryOptions(opts...)
}

// WithConstructors replaces engine constructors.
func WithConstructors(c Constructors) FactoriesOption {
	return internal.WithConstructors(c)
}

// WithMaxEngines bounds the engine cache with LRU eviction.
func WithMaxEngines(n int) FactoriesOption {
	return internal.WithMaxEngines(n)
}

// WithEvictHook reports the kind of each engine dropped from the cache.
func WithEvictHook(fn func(kind string)) FactoriesOption {
	return internal.WithEvictHook(fn)
}

// WithKeyFunc sets the engine cache key derivation.
func WithKeyFunc(fn KeyFunc) FactoriesOption {
	return internal.WithKeyFunc(fn)
}

// Locale extractors

// NewExtractor creates an Extractor that tries sources in order.
func NewExtractor(sources ...ExtractorSource) Extractor {
	return internal.NewExtractor(sources...)
}

// FromHeader reads a request header.
func FromHeader(name string) ExtractorSource {
	return internal.FromHeader(name)
}

// FromQuery reads a query parameter.
func FromQuery(name string) ExtractorSource {
	return internal.FromQuery(name)
}

// FromCookie reads a cookie.
func FromCookie(name string) ExtractorSource {
	return internal.FromCookie(name)
}

// FromParam reads a chi URL parameter.
func FromParam(name string) ExtractorSource {
	return internal.FromParam(name)
}
