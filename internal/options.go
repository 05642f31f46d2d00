package internal

import (
	"log/slog"
	"maps"
	"time"

	"github.com/dmitrymomot/intlfmt/pkg/i18n"
	"github.com/dmitrymomot/intlfmt/pkg/logger"
)

// Option configures a Formatter at construction or derivation.
type Option func(*settings) error

// WithMessages sets the message catalog (message id to ICU template).
func WithMessages(messages map[string]string) Option {
	return func(s *settings) error {
		s.messages = maps.Clone(messages)
		s.mark(fieldMessages)
		return nil
	}
}

// WithFormats sets the named format presets.
// On ChangeLocale the presets merge with the inherited ones by name.
//
// Example:
//
//	intlfmt.WithFormats(intlfmt.Formats{
//	    intlfmt.KindNumber: {"usd": {"style": "currency", "currency": "USD"}},
//	})
func WithFormats(formats i18n.Formats) Option {
	return func(s *settings) error {
		s.formats = cloneFormats(formats)
		s.mark(fieldFormats)
		return nil
	}
}

// WithDefaultLocale sets the locale used when the requested one has no data.
func WithDefaultLocale(locale string) Option {
	return func(s *settings) error {
		if locale == "" {
			return ErrInvalidLocale
		}
		s.defaultLocale = locale
		s.mark(fieldDefaultLocale)
		return nil
	}
}

// WithDefaultFormats sets the presets used with the default locale.
func WithDefaultFormats(formats i18n.Formats) Option {
	return func(s *settings) error {
		s.defaultFormats = cloneFormats(formats)
		s.mark(fieldDefaultFormats)
		return nil
	}
}

// WithDefaultMessages sets the fallback catalog consulted after the
// locale catalog. On ChangeLocale the entries merge by message id.
func WithDefaultMessages(messages map[string]string) Option {
	return func(s *settings) error {
		s.defaultMessages = maps.Clone(messages)
		s.mark(fieldDefaultMessages)
		return nil
	}
}

// WithRequireOther controls whether plural and select arguments must define
// an "other" branch. Enabled by default.
func WithRequireOther(require bool) Option {
	return func(s *settings) error {
		s.requireOther = require
		s.mark(fieldRequireOther)
		return nil
	}
}

// WithMessageBuilder sets the builder used to assemble message output.
func WithMessageBuilder(factory i18n.BuilderFactory) Option {
	return func(s *settings) error {
		if factory == nil {
			return ErrNilMessageBuilder
		}
		s.messageBuilder = factory
		s.mark(fieldMessageBuilder)
		return nil
	}
}

// WithErrorHandler sets the diagnostic hook. It receives resolution warnings
// and formatting failures and must not panic.
func WithErrorHandler(fn func(msg string, err error)) Option {
	return func(s *settings) error {
		if fn == nil {
			return ErrNilErrorHandler
		}
		s.onError = fn
		s.mark(fieldOnError)
		return nil
	}
}

// WithLogger reports diagnostics to l at error level.
func WithLogger(l *slog.Logger) Option {
	return WithErrorHandler(logger.ErrorHandler(l))
}

// WithTextComponent wraps every Message result in the named element,
// e.g. "span" renders "<span>text</span>". Ignored when a text renderer is set.
func WithTextComponent(name string) Option {
	return func(s *settings) error {
		s.textComponent = name
		s.mark(fieldTextComponent)
		return nil
	}
}

// WithTextRenderer post-processes every Message result.
func WithTextRenderer(fn func(any) any) Option {
	return func(s *settings) error {
		if fn == nil {
			return ErrNilTextRenderer
		}
		s.textRenderer = fn
		s.mark(fieldTextRenderer)
		return nil
	}
}

// WithProduction enables production mode: diagnostics are suppressed and
// messages formatted without values skip parsing.
func WithProduction(production bool) Option {
	return func(s *settings) error {
		s.production = production
		s.mark(fieldProduction)
		return nil
	}
}

// WithRegistry sets the locale data registry. Defaults to the process-wide
// registry preloaded with the built-in datasets.
func WithRegistry(reg *i18n.Registry) Option {
	return func(s *settings) error {
		if reg == nil {
			return ErrNilRegistry
		}
		s.registry = reg
		s.mark(fieldRegistry)
		return nil
	}
}

// WithInitialNow freezes the formatter clock at t.
// Relative formatting then measures every value against the same instant.
func WithInitialNow(t time.Time) Option {
	return func(s *settings) error {
		s.initialNow = t
		s.clock = nil
		s.clockSet = true
		return nil
	}
}

// WithClock makes the formatter read the current time from fn on every call.
func WithClock(fn func() time.Time) Option {
	return func(s *settings) error {
		if fn == nil {
			return ErrNilClock
		}
		s.initialNow = time.Time{}
		s.clock = fn
		s.clockSet = true
		return nil
	}
}

// WithFactories makes the formatter use an existing engine cache instead of
// creating its own.
func WithFactories(f *Factories) Option {
	return func(s *settings) error {
		if f == nil {
			return ErrNilFactories
		}
		s.factories = f
		return nil
	}
}

// WithFactoryOptions configures the engine cache the formatter creates.
// Ignored when WithFactories is used or when factories are inherited.
func WithFactoryOptions(opts ...FactoriesOption) Option {
	return func(s *settings) error {
		s.factoryOpts = append(s.factoryOpts, opts...)
		return nil
	}
}

// cloneFormats copies the preset maps so later changes by the caller do not
// reach a built Formatter.
func cloneFormats(f i18n.Formats) i18n.Formats {
	if f == nil {
		return nil
	}
	return i18n.Formats{}.Merge(f)
}
