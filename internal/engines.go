package internal

import (
	"time"

	"github.com/dmitrymomot/intlfmt/pkg/i18n"
)

// DateTimeEngine formats dates and times.
type DateTimeEngine interface {
	Format(t time.Time) (string, error)
}

// NumberEngine formats numbers.
type NumberEngine interface {
	Format(v float64) (string, error)
}

// RelativeEngine formats a time relative to now.
type RelativeEngine interface {
	Format(t, now time.Time) (string, error)
}

// PluralEngine selects the plural category for a number.
type PluralEngine interface {
	Format(n float64) (string, error)
}

// MessageEngine renders a parsed message through a builder.
type MessageEngine interface {
	Format(values map[string]any, newBuilder i18n.BuilderFactory) (any, error)
}

// Constructors builds engines. A nil field keeps the default constructor.
type Constructors struct {
	DateTime func(reg *i18n.Registry, locale string, opts i18n.Options) (DateTimeEngine, error)
	Number   func(reg *i18n.Registry, locale string, opts i18n.Options) (NumberEngine, error)
	Relative func(reg *i18n.Registry, locale string, opts i18n.Options) (RelativeEngine, error)
	Plural   func(locale string, opts i18n.Options) (PluralEngine, error)
	Message  func(reg *i18n.Registry, pattern, locale string, formats i18n.Formats, opts i18n.MessageOptions) (MessageEngine, error)
}

// DefaultConstructors returns constructors backed by the pkg/i18n engines.
func DefaultConstructors() Constructors {
	return Constructors{
		DateTime: func(reg *i18n.Registry, locale string, opts i18n.Options) (DateTimeEngine, error) {
			f, err := i18n.NewDateTimeFormat(reg, locale, opts)
			if err != nil {
				return nil, err
			}
			return f, nil
		},
		Number: func(reg *i18n.Registry, locale string, opts i18n.Options) (NumberEngine, error) {
			f, err := i18n.NewNumberFormat(reg, locale, opts)
			if err != nil {
				return nil, err
			}
			return f, nil
		},
		Relative: func(reg *i18n.Registry, locale string, opts i18n.Options) (RelativeEngine, error) {
			f, err := i18n.NewRelativeFormat(reg, locale, opts)
			if err != nil {
				return nil, err
			}
			return f, nil
		},
		Plural: func(locale string, opts i18n.Options) (PluralEngine, error) {
			f, err := i18n.NewPluralFormat(locale, opts)
			if err != nil {
				return nil, err
			}
			return f, nil
		},
		Message: func(reg *i18n.Registry, pattern, locale string, formats i18n.Formats, opts i18n.MessageOptions) (MessageEngine, error) {
			f, err := i18n.NewMessageFormat(reg, pattern, locale, formats, opts)
			if err != nil {
				return nil, err
			}
			return f, nil
		},
	}
}

func (c Constructors) withDefaults() Constructors {
	d := DefaultConstructors()
	if c.DateTime == nil {
		c.DateTime = d.DateTime
	}
	if c.Number == nil {
		c.Number = d.Number
	}
	if c.Relative == nil {
		c.Relative = d.Relative
	}
	if c.Plural == nil {
		c.Plural = d.Plural
	}
	if c.Message == nil {
		c.Message = d.Message
	}
	return c
}
