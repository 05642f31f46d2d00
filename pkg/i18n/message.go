package i18n

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// MessageOptions configures message compilation.
type MessageOptions struct {
	// RequireOther makes plural, selectordinal and select arguments without
	// an "other" option a compile error.
	RequireOther bool
}

// builtinMessageFormats are the styles usable in {x, number|date|time, style}
// without configuration.
var builtinMessageFormats = Formats{
	KindNumber: {
		"integer":  {"maximumFractionDigits": 0},
		"currency": {"style": NumberCurrency},
		"percent":  {"style": NumberPercent},
	},
	KindDate: {
		"short":  {"month": styleNumeric, "day": styleNumeric, "year": style2Digit},
		"medium": {"month": styleShort, "day": styleNumeric, "year": styleNumeric},
		"long":   {"month": styleLong, "day": styleNumeric, "year": styleNumeric},
		"full":   {"weekday": styleLong, "month": styleLong, "day": styleNumeric, "year": styleNumeric},
	},
	KindTime: {
		"short":  {"hour": styleNumeric, "minute": styleNumeric},
		"medium": {"hour": styleNumeric, "minute": styleNumeric, "second": styleNumeric},
		"long":   {"hour": styleNumeric, "minute": styleNumeric, "second": styleNumeric, "timeZoneName": styleShort},
		"full":   {"hour": styleNumeric, "minute": styleNumeric, "second": styleNumeric, "timeZoneName": styleShort},
	},
}

// MessageFormat is a compiled ICU message pattern for one locale.
// It is safe for concurrent use.
type MessageFormat struct {
	reg     *Registry
	formats Formats
	subs    map[string]any
	locale  string
	pattern string
	nodes   []node
	mu      sync.Mutex
}

// NewMessageFormat compiles pattern. formats adds or overrides named styles
// for number, date and time arguments. Syntax errors, and missing "other"
// options when RequireOther is set, are returned here.
func NewMessageFormat(reg *Registry, pattern, locale string, formats Formats, opts MessageOptions) (*MessageFormat, error) {
	if _, err := parseTag(locale); err != nil {
		return nil, err
	}
	nodes, err := parsePattern(pattern, opts.RequireOther)
	if err != nil {
		return nil, err
	}
	return &MessageFormat{
		reg:     reg,
		formats: builtinMessageFormats.Merge(formats),
		subs:    make(map[string]any),
		locale:  locale,
		pattern: pattern,
		nodes:   nodes,
	}, nil
}

// Pattern returns the source pattern.
func (mf *MessageFormat) Pattern() string {
	return mf.pattern
}

// Format renders the message with values. newBuilder defaults to
// StringBuilderFactory. A referenced argument missing from values is an
// error wrapping ErrMissingValue.
func (mf *MessageFormat) Format(values map[string]any, newBuilder BuilderFactory) (any, error) {
	if newBuilder == nil {
		newBuilder = StringBuilderFactory
	}
	b := newBuilder()
	if err := mf.formatNodes(b, mf.nodes, values, nil); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

// pluralScope carries the number that # refers to.
type pluralScope struct {
	value float64
}

func (mf *MessageFormat) formatNodes(b Builder, nodes []node, values map[string]any, scope *pluralScope) error {
	for _, n := range nodes {
		switch n.kind {
		case nodeText:
			b.AppendText(n.text)

		case nodePound:
			if scope == nil {
				b.AppendText("#")
				continue
			}
			s, err := mf.formatNumber(scope.value, "")
			if err != nil {
				return err
			}
			b.AppendValue(s)

		case nodeTag:
			b.OpenTag(n.name)
			if err := mf.formatNodes(b, n.children, values, scope); err != nil {
				return err
			}
			b.CloseTag(n.name)

		case nodeArg:
			v, ok := values[n.name]
			if !ok {
				return fmt.Errorf("%w: %s", ErrMissingValue, n.name)
			}
			switch n.argType {
			case KindNumber:
				num, err := ToNumber(v)
				if err != nil {
					return fmt.Errorf("argument %s: %w", n.name, err)
				}
				s, err := mf.formatNumber(num, n.style)
				if err != nil {
					return err
				}
				b.AppendValue(s)
			case KindDate, KindTime:
				t, err := ToTime(v)
				if err != nil {
					return fmt.Errorf("argument %s: %w", n.name, err)
				}
				df, err := mf.dateTime(n.argType, n.style)
				if err != nil {
					return err
				}
				s, err := df.Format(t)
				if err != nil {
					return err
				}
				b.AppendValue(s)
			default:
				b.AppendValue(v)
			}

		case nodePlural:
			v, ok := values[n.name]
			if !ok {
				return fmt.Errorf("%w: %s", ErrMissingValue, n.name)
			}
			num, err := ToNumber(v)
			if err != nil {
				return fmt.Errorf("argument %s: %w", n.name, err)
			}
			opt, err := mf.selectPlural(n, num)
			if err != nil {
				return err
			}
			if err := mf.formatNodes(b, opt.nodes, values, &pluralScope{value: num - n.offset}); err != nil {
				return err
			}

		case nodeSelect:
			v, ok := values[n.name]
			if !ok {
				return fmt.Errorf("%w: %s", ErrMissingValue, n.name)
			}
			key := fmt.Sprint(v)
			opt, ok := findOption(n.options, key)
			if !ok {
				opt, ok = findOption(n.options, PluralOther)
			}
			if !ok {
				return fmt.Errorf("%w: %s=%q", ErrNoOption, n.name, key)
			}
			if err := mf.formatNodes(b, opt.nodes, values, scope); err != nil {
				return err
			}
		}
	}
	return nil
}

func (mf *MessageFormat) selectPlural(n node, num float64) (option, error) {
	for _, o := range n.options {
		if !strings.HasPrefix(o.selector, "=") {
			continue
		}
		if exact, err := strconv.ParseFloat(o.selector[1:], 64); err == nil && exact == num {
			return o, nil
		}
	}

	pf, err := mf.plural(n.ordinal)
	if err != nil {
		return option{}, err
	}
	category, err := pf.Format(num - n.offset)
	if err != nil {
		return option{}, err
	}
	if o, ok := findOption(n.options, category); ok {
		return o, nil
	}
	if o, ok := findOption(n.options, PluralOther); ok {
		return o, nil
	}
	return option{}, fmt.Errorf("%w: %s has no %q or other option", ErrNoOption, n.name, category)
}

func findOption(opts []option, selector string) (option, bool) {
	for _, o := range opts {
		if o.selector == selector {
			return o, true
		}
	}
	return option{}, false
}

func (mf *MessageFormat) formatNumber(v float64, style string) (string, error) {
	key := "number:" + style
	nf, err := memo(mf, key, func() (*NumberFormat, error) {
		opts, _ := mf.formats.Preset(KindNumber, style)
		return NewNumberFormat(mf.reg, mf.locale, opts)
	})
	if err != nil {
		return "", err
	}
	return nf.Format(v)
}

func (mf *MessageFormat) dateTime(kind, style string) (*DateTimeFormat, error) {
	return memo(mf, kind+":"+style, func() (*DateTimeFormat, error) {
		opts, ok := mf.formats.Preset(kind, style)
		if !ok && kind == KindTime {
			opts, _ = mf.formats.Preset(KindTime, "short")
		}
		return NewDateTimeFormat(mf.reg, mf.locale, opts)
	})
}

func (mf *MessageFormat) plural(ordinal bool) (*PluralFormat, error) {
	style := PluralCardinal
	if ordinal {
		style = PluralOrdinal
	}
	return memo(mf, "plural:"+style, func() (*PluralFormat, error) {
		return NewPluralFormat(mf.locale, Options{"style": style})
	})
}

// memo builds a sub-formatter once per message.
func memo[T any](mf *MessageFormat, key string, build func() (T, error)) (T, error) {
	mf.mu.Lock()
	defer mf.mu.Unlock()

	if v, ok := mf.subs[key]; ok {
		return v.(T), nil
	}
	v, err := build()
	if err != nil {
		return v, err
	}
	mf.subs[key] = v
	return v, nil
}
