package internal

import (
	"maps"
	"time"

	"github.com/dmitrymomot/intlfmt/pkg/i18n"
	"github.com/dmitrymomot/intlfmt/pkg/logger"
)

// Inheritable configuration fields.
const (
	fieldMessages        = "messages"
	fieldFormats         = "formats"
	fieldDefaultLocale   = "defaultLocale"
	fieldDefaultFormats  = "defaultFormats"
	fieldDefaultMessages = "defaultMessages"
	fieldRequireOther    = "requireOther"
	fieldMessageBuilder  = "messageBuilder"
	fieldOnError         = "onError"
	fieldTextComponent   = "textComponent"
	fieldTextRenderer    = "textRenderer"
	fieldProduction      = "production"
	fieldRegistry        = "registry"
)

// DefaultLocale is the fallback locale when none is configured.
const DefaultLocale = "en"

// settings holds the raw, unresolved configuration a Formatter was built
// from. Derived formatters start from their parent's settings.
type settings struct {
	set map[string]bool

	messages        map[string]string
	formats         i18n.Formats
	defaultLocale   string
	defaultFormats  i18n.Formats
	defaultMessages map[string]string
	requireOther    bool
	messageBuilder  i18n.BuilderFactory
	onError         func(msg string, err error)
	textComponent   string
	textRenderer    func(any) any
	production      bool
	registry        *i18n.Registry

	// Per instance, never inherited.
	initialNow  time.Time
	clock       func() time.Time
	clockSet    bool
	factories   *Factories
	factoryOpts []FactoriesOption
}

func newSettings() *settings {
	return &settings{set: make(map[string]bool)}
}

func defaultSettings() *settings {
	s := newSettings()
	s.defaultLocale = DefaultLocale
	s.requireOther = true
	s.messageBuilder = i18n.StringBuilderFactory
	s.onError = logger.ErrorHandler(logger.New())
	s.registry = i18n.DefaultRegistry()
	return s
}

func (s *settings) mark(field string) {
	s.set[field] = true
}

func (s *settings) isSet(field string) bool {
	return s.set[field]
}

// inheritable returns a copy carrying only the fields in mergeTable.
func (s *settings) inheritable() *settings {
	out := newSettings()
	for name, f := range mergeTable {
		f.put(out, f.get(s))
		if s.isSet(name) {
			out.mark(name)
		}
	}
	return out
}

// resolved returns the inheritable part of s with the catalog and presets
// cfg resolved to, so a derived formatter starts from what its parent shows.
func (s *settings) resolved(cfg Config) *settings {
	out := s.inheritable()
	out.messages = cfg.Messages
	out.formats = cfg.Formats
	out.mark(fieldMessages)
	out.mark(fieldFormats)
	return out
}

type mergeStrategy int

const (
	// replace takes the override value as is.
	replace mergeStrategy = iota
	// shallowMerge layers the override map over the current one by key.
	shallowMerge
	// deepMergeByPresetName layers presets by kind and preset name.
	deepMergeByPresetName
)

type mergeField struct {
	get      func(*settings) any
	put      func(*settings, any)
	strategy mergeStrategy
}

var mergeTable = map[string]mergeField{
	fieldMessages: {
		strategy: replace,
		get:      func(s *settings) any { return s.messages },
		put:      func(s *settings, v any) { s.messages = v.(map[string]string) },
	},
	fieldFormats: {
		strategy: deepMergeByPresetName,
		get:      func(s *settings) any { return s.formats },
		put:      func(s *settings, v any) { s.formats = v.(i18n.Formats) },
	},
	fieldDefaultLocale: {
		strategy: replace,
		get:      func(s *settings) any { return s.defaultLocale },
		put:      func(s *settings, v any) { s.defaultLocale = v.(string) },
	},
	fieldDefaultFormats: {
		strategy: deepMergeByPresetName,
		get:      func(s *settings) any { return s.defaultFormats },
		put:      func(s *settings, v any) { s.defaultFormats = v.(i18n.Formats) },
	},
	fieldDefaultMessages: {
		strategy: shallowMerge,
		get:      func(s *settings) any { return s.defaultMessages },
		put:      func(s *settings, v any) { s.defaultMessages = v.(map[string]string) },
	},
	fieldRequireOther: {
		strategy: replace,
		get:      func(s *settings) any { return s.requireOther },
		put:      func(s *settings, v any) { s.requireOther = v.(bool) },
	},
	fieldMessageBuilder: {
		strategy: replace,
		get:      func(s *settings) any { return s.messageBuilder },
		put:      func(s *settings, v any) { s.messageBuilder = v.(i18n.BuilderFactory) },
	},
	fieldOnError: {
		strategy: replace,
		get:      func(s *settings) any { return s.onError },
		put:      func(s *settings, v any) { s.onError = v.(func(string, error)) },
	},
	fieldTextComponent: {
		strategy: replace,
		get:      func(s *settings) any { return s.textComponent },
		put:      func(s *settings, v any) { s.textComponent = v.(string) },
	},
	fieldTextRenderer: {
		strategy: replace,
		get:      func(s *settings) any { return s.textRenderer },
		put:      func(s *settings, v any) { s.textRenderer = v.(func(any) any) },
	},
	fieldProduction: {
		strategy: replace,
		get:      func(s *settings) any { return s.production },
		put:      func(s *settings, v any) { s.production = v.(bool) },
	},
	fieldRegistry: {
		strategy: replace,
		get:      func(s *settings) any { return s.registry },
		put:      func(s *settings, v any) { s.registry = v.(*i18n.Registry) },
	},
}

// merge returns the inheritable part of s with every field set in override
// applied according to its strategy. Neither input is modified.
func (s *settings) merge(override *settings) *settings {
	out := s.inheritable()

	for name, f := range mergeTable {
		if !override.isSet(name) {
			continue
		}
		out.mark(name)

		switch f.strategy {
		case replace:
			f.put(out, f.get(override))
		case shallowMerge:
			merged := make(map[string]string)
			maps.Copy(merged, f.get(out).(map[string]string))
			maps.Copy(merged, f.get(override).(map[string]string))
			f.put(out, merged)
		case deepMergeByPresetName:
			f.put(out, f.get(out).(i18n.Formats).Merge(f.get(override).(i18n.Formats)))
		}
	}

	out.initialNow = override.initialNow
	out.clock = override.clock
	out.clockSet = override.clockSet
	out.factories = override.factories
	out.factoryOpts = override.factoryOpts

	return out
}
