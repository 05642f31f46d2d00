package internal

import (
	"fmt"

	"github.com/dmitrymomot/intlfmt/pkg/i18n"
)

// emptyCatalog is the catalog of every formatter whose requested locale has
// no data. It is shared so repeated fallbacks yield the same map.
var emptyCatalog = map[string]string{}

// EmptyCatalog returns the shared catalog used on locale fallback.
// Callers must not modify it.
func EmptyCatalog() map[string]string {
	return emptyCatalog
}

// Config is the resolved configuration of a Formatter. Maps are shared with
// the Formatter and must be treated as read-only.
type Config struct {
	Messages        map[string]string
	Formats         i18n.Formats
	DefaultFormats  i18n.Formats
	DefaultMessages map[string]string
	MessageBuilder  i18n.BuilderFactory
	OnError         func(msg string, err error)
	TextRenderer    func(any) any
	Registry        *i18n.Registry
	Locale          string
	DefaultLocale   string
	TextComponent   string
	RequireOther    bool
	Production      bool
}

// resolve picks the effective locale, catalog and presets for locale.
// A locale without registry data falls back to the default locale, the
// default presets and the shared empty catalog.
func resolve(locale string, s *settings) Config {
	cfg := Config{
		DefaultLocale:   s.defaultLocale,
		DefaultFormats:  s.defaultFormats,
		DefaultMessages: s.defaultMessages,
		RequireOther:    s.requireOther,
		MessageBuilder:  s.messageBuilder,
		OnError:         s.onError,
		TextComponent:   s.textComponent,
		TextRenderer:    s.textRenderer,
		Production:      s.production,
		Registry:        s.registry,
	}

	if !s.registry.HasLocaleData(locale) {
		if !s.production {
			s.onError(fmt.Sprintf(
				"Missing locale data for locale: %q. Using default locale: %q as fallback.",
				locale, s.defaultLocale,
			), ErrMissingLocaleData)
		}
		cfg.Locale = s.defaultLocale
		cfg.Formats = s.defaultFormats
		cfg.Messages = emptyCatalog
		return cfg
	}

	cfg.Locale = locale
	if cfg.Locale == "" {
		cfg.Locale = s.defaultLocale
	}
	cfg.Formats = s.formats
	if cfg.Formats == nil {
		cfg.Formats = s.defaultFormats
	}
	cfg.Messages = s.messages
	if cfg.Messages == nil {
		cfg.Messages = s.defaultMessages
	}
	return cfg
}

// textWrapper returns the function applied to Message results, or nil.
func (c Config) textWrapper() func(any) any {
	if c.TextRenderer != nil {
		return c.TextRenderer
	}
	if c.TextComponent == "" {
		return nil
	}
	tag := c.TextComponent
	return func(v any) any {
		return fmt.Sprintf("<%s>%v</%s>", tag, v, tag)
	}
}
