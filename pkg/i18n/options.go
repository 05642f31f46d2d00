package i18n

import (
	"fmt"
	"maps"
	"math"
)

// Format kinds used as keys of Formats.
const (
	KindDate     = "date"
	KindTime     = "time"
	KindNumber   = "number"
	KindRelative = "relative"
)

// M holds placeholder values for message formatting.
type M map[string]any

// Options is a bag of formatting options, keyed by the option name
// (e.g. "style", "currency", "minimumFractionDigits").
type Options map[string]any

// Presets maps a preset name to its options.
type Presets map[string]Options

// Formats maps a format kind (date, time, number, relative) to named presets.
type Formats map[string]Presets

// Whitelists of recognised option names per formatter kind.
var (
	DateTimeOptionNames = []string{
		"localeMatcher", "formatMatcher",
		"timeZone", "hour12",
		"weekday", "era", "year", "month", "day",
		"hour", "minute", "second", "timeZoneName",
	}
	NumberOptionNames = []string{
		"localeMatcher",
		"style", "currency", "currencyDisplay", "useGrouping",
		"minimumIntegerDigits", "minimumFractionDigits", "maximumFractionDigits",
		"minimumSignificantDigits", "maximumSignificantDigits",
	}
	RelativeOptionNames = []string{"style", "units"}
	PluralOptionNames   = []string{"style"}
)

// Filter returns a new bag containing only whitelisted keys. For each name
// the value from o wins; otherwise the value from defaults is used.
func (o Options) Filter(names []string, defaults Options) Options {
	out := make(Options, len(names))
	for _, name := range names {
		if v, ok := o[name]; ok {
			out[name] = v
		} else if v, ok := defaults[name]; ok {
			out[name] = v
		}
	}
	return out
}

// Clone returns a shallow copy.
func (o Options) Clone() Options {
	if o == nil {
		return Options{}
	}
	return maps.Clone(o)
}

// String returns the string option under key.
// The second result reports presence; a value of another type is an error.
func (o Options) String(key string) (string, bool, error) {
	v, ok := o[key]
	if !ok || v == nil {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", true, fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidOption, key, v)
	}
	return s, true, nil
}

// Bool returns the boolean option under key.
func (o Options) Bool(key string) (bool, bool, error) {
	v, ok := o[key]
	if !ok || v == nil {
		return false, false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, true, fmt.Errorf("%w: %s must be a boolean, got %T", ErrInvalidOption, key, v)
	}
	return b, true, nil
}

// Int returns the integer option under key. Integral floats decoded from
// JSON or YAML are accepted.
func (o Options) Int(key string) (int, bool, error) {
	v, ok := o[key]
	if !ok || v == nil {
		return 0, false, nil
	}
	f, err := ToNumber(v)
	if err != nil || f != math.Trunc(f) {
		return 0, true, fmt.Errorf("%w: %s must be an integer, got %v", ErrInvalidOption, key, v)
	}
	return int(f), true, nil
}

// oneOf returns the string option under key, validated against allowed.
func (o Options) oneOf(key string, allowed ...string) (string, error) {
	s, ok, err := o.String(key)
	if err != nil || !ok {
		return "", err
	}
	for _, a := range allowed {
		if s == a {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %s %q must be one of %q", ErrInvalidOption, key, s, allowed)
}

// intRange returns the integer option under key, validated to [lo, hi].
func (o Options) intRange(key string, lo, hi int) (int, bool, error) {
	n, ok, err := o.Int(key)
	if err != nil || !ok {
		return 0, ok, err
	}
	if n < lo || n > hi {
		return 0, true, fmt.Errorf("%w: %s %d is out of range [%d, %d]", ErrInvalidOption, key, n, lo, hi)
	}
	return n, true, nil
}

// Preset returns the named preset for kind.
func (f Formats) Preset(kind, name string) (Options, bool) {
	presets, ok := f[kind]
	if !ok {
		return nil, false
	}
	opts, ok := presets[name]
	return opts, ok
}

// Merge returns a new Formats with src layered over f. Presets are merged
// by name within each kind; a preset present in src replaces the one in f.
func (f Formats) Merge(src Formats) Formats {
	out := make(Formats, len(f)+len(src))
	for kind, presets := range f {
		out[kind] = maps.Clone(presets)
	}
	for kind, presets := range src {
		dst, ok := out[kind]
		if !ok || dst == nil {
			dst = make(Presets, len(presets))
			out[kind] = dst
		}
		maps.Copy(dst, presets)
	}
	return out
}
