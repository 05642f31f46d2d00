package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrymomot/intlfmt/pkg/i18n"
	"github.com/dmitrymomot/intlfmt/pkg/sanitizer"
)

// relativeThresholds is the rollover policy used for every relative call,
// whatever the process-wide thresholds are.
var relativeThresholds = i18n.Thresholds{
	Second: 60,
	Minute: 60,
	Hour:   24,
	Day:    30,
	Month:  12,
}

// state is what the dispatch functions need beyond the configuration.
type state struct {
	factories *Factories
	now       func() time.Time
}

// report forwards a diagnostic to the error hook outside production mode.
func (c Config) report(msg string, err error) {
	if c.Production {
		return
	}
	c.OnError(msg, err)
}

// namedFormat returns the preset selected by the "format" option, or nil.
func namedFormat(cfg Config, kind string, opts i18n.Options) i18n.Options {
	v, ok := opts["format"]
	if !ok || v == nil {
		return nil
	}
	name := fmt.Sprint(v)
	if name == "" {
		return nil
	}
	preset, ok := cfg.Formats.Preset(kind, name)
	if !ok {
		cfg.report(fmt.Sprintf("No %s format named: %s", kind, name), ErrMissingPreset)
		return nil
	}
	return preset
}

// safely runs fn and converts a panic into an error.
func safely[T any](fn func() (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrFormatPanic, r)
		}
	}()
	return fn()
}

// timeFallback is the result of a failed date, time or relative call: the
// coerced time when coercion got that far, the raw value otherwise.
func timeFallback(t time.Time, coerced bool, value any) string {
	if !coerced {
		return fmt.Sprint(value)
	}
	return t.String()
}

// formatDateTime coerces and formats value inside safely, so a panicking
// Stringer or engine ends as an error like any other failure.
func formatDateTime(cfg Config, st state, value any, filtered i18n.Options) (string, time.Time, bool, error) {
	var (
		t       time.Time
		coerced bool
	)
	out, err := safely(func() (string, error) {
		v, err := i18n.ToTime(value)
		if err != nil {
			return "", err
		}
		t, coerced = v, true
		f, err := st.factories.DateTimeFormat(cfg.Locale, filtered)
		if err != nil {
			return "", err
		}
		return f.Format(t)
	})
	return out, t, coerced, err
}

func formatDate(cfg Config, st state, value any, opts i18n.Options) string {
	filtered := opts.Filter(i18n.DateTimeOptionNames, namedFormat(cfg, i18n.KindDate, opts))

	out, t, coerced, err := formatDateTime(cfg, st, value, filtered)
	if err != nil {
		cfg.report("Error formatting date.", err)
		return timeFallback(t, coerced, value)
	}
	return out
}

func formatTime(cfg Config, st state, value any, opts i18n.Options) string {
	filtered := opts.Filter(i18n.DateTimeOptionNames, namedFormat(cfg, i18n.KindTime, opts))

	if !hasAny(filtered, "hour", "minute", "second") {
		filtered["hour"] = "numeric"
		filtered["minute"] = "numeric"
	}

	out, t, coerced, err := formatDateTime(cfg, st, value, filtered)
	if err != nil {
		cfg.report("Error formatting time.", err)
		return timeFallback(t, coerced, value)
	}
	return out
}

func hasAny(opts i18n.Options, keys ...string) bool {
	for _, k := range keys {
		if v, ok := opts[k]; ok && v != nil && v != "" {
			return true
		}
	}
	return false
}

func formatRelative(cfg Config, st state, value any, opts i18n.Options) string {
	filtered := opts.Filter(i18n.RelativeOptionNames, namedFormat(cfg, i18n.KindRelative, opts))

	var (
		out     string
		err     error
		t       time.Time
		coerced bool
	)
	i18n.WithRelativeThresholds(relativeThresholds, func() {
		out, err = safely(func() (string, error) {
			v, err := i18n.ToTime(value)
			if err != nil {
				return "", err
			}
			t, coerced = v, true

			now := st.now()
			if raw, ok := opts["now"]; ok {
				// A bad now option keeps the clock.
				if n, err := safely(func() (time.Time, error) { return i18n.ToTime(raw) }); err == nil {
					now = n
				}
			}

			f, err := st.factories.RelativeFormat(cfg.Locale, filtered)
			if err != nil {
				return "", err
			}
			return f.Format(t, now)
		})
	})
	if err != nil {
		cfg.report("Error formatting relative time.", err)
		return timeFallback(t, coerced, value)
	}
	return out
}

func formatNumber(cfg Config, st state, value any, opts i18n.Options) string {
	filtered := opts.Filter(i18n.NumberOptionNames, namedFormat(cfg, i18n.KindNumber, opts))

	out, err := safely(func() (string, error) {
		n, err := i18n.ToNumber(value)
		if err != nil {
			return "", err
		}
		f, err := st.factories.NumberFormat(cfg.Locale, filtered)
		if err != nil {
			return "", err
		}
		return f.Format(n)
	})
	if err != nil {
		cfg.report("Error formatting number.", err)
		return fmt.Sprint(value)
	}
	return out
}

func formatPlural(cfg Config, st state, value any, opts i18n.Options) string {
	filtered := opts.Filter(i18n.PluralOptionNames, nil)

	out, err := safely(func() (string, error) {
		n, err := i18n.ToNumber(value)
		if err != nil {
			return "", err
		}
		f, err := st.factories.PluralFormat(cfg.Locale, filtered)
		if err != nil {
			return "", err
		}
		return f.Format(n)
	})
	if err != nil {
		cfg.report("Error formatting plural.", err)
		return i18n.PluralOther
	}
	return out
}

// lookupMessage returns the template for id from the locale catalog, then
// from the default catalog.
func lookupMessage(cfg Config, id string) string {
	if m := cfg.Messages[id]; m != "" {
		return m
	}
	return cfg.DefaultMessages[id]
}

func formatMessage(cfg Config, st state, desc i18n.MessageDescriptor, values map[string]any) any {
	id := desc.ID
	if id == "" {
		cfg.report("An id must be provided to format a message.", ErrMissingMessageID)
		return ""
	}

	message := lookupMessage(cfg, id)

	// Without values a production build returns the source as is.
	if len(values) == 0 && cfg.Production {
		return firstNonEmpty(message, desc.DefaultMessage, id)
	}

	var (
		out       any
		formatted bool
	)

	if message != "" {
		res, err := safely(func() (any, error) {
			mf, err := st.factories.MessageFormat(message, cfg.Locale, cfg.Formats, i18n.MessageOptions{RequireOther: cfg.RequireOther})
			if err != nil {
				return nil, err
			}
			return mf.Format(values, cfg.MessageBuilder)
		})
		if err != nil {
			suffix := ""
			if desc.DefaultMessage != "" {
				suffix = ", using default message as fallback."
			}
			cfg.report(fmt.Sprintf("Error formatting message: %q for locale: %q%s", id, cfg.Locale, suffix), err)
		} else {
			out, formatted = res, true
		}
	} else if desc.DefaultMessage == "" || !strings.EqualFold(cfg.Locale, cfg.DefaultLocale) {
		// A default message in the default locale is the expected source,
		// not a missing translation.
		suffix := ""
		if desc.DefaultMessage != "" {
			suffix = ", using default message as fallback."
		}
		cfg.report(fmt.Sprintf("Missing message: %q for locale: %q%s", id, cfg.Locale, suffix), ErrMissingMessage)
	}

	if !formatted && desc.DefaultMessage != "" {
		res, err := safely(func() (any, error) {
			mf, err := st.factories.MessageFormat(desc.DefaultMessage, cfg.DefaultLocale, cfg.DefaultFormats, i18n.MessageOptions{RequireOther: cfg.RequireOther})
			if err != nil {
				return nil, err
			}
			return mf.Format(values, cfg.MessageBuilder)
		})
		if err != nil {
			cfg.report(fmt.Sprintf("Error formatting the default message for: %q", id), err)
		} else {
			out, formatted = res, true
		}
	}

	if !formatted {
		source := "id"
		if message != "" || desc.DefaultMessage != "" {
			source = "source"
		}
		cfg.report(fmt.Sprintf("Cannot format message: %q, using message %s as fallback.", id, source), ErrMissingMessage)
		return firstNonEmpty(message, desc.DefaultMessage, id)
	}

	return out
}

// formatHTMLMessage escapes every string value before formatting, so the
// result can be injected into markup.
func formatHTMLMessage(cfg Config, st state, desc i18n.MessageDescriptor, values map[string]any) any {
	escaped := make(map[string]any, len(values))
	for k, v := range values {
		if s, ok := v.(string); ok {
			escaped[k] = sanitizer.EscapeHTML(s)
			continue
		}
		escaped[k] = v
	}
	return formatMessage(cfg, st, desc, escaped)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
