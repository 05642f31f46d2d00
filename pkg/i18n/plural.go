package i18n

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// Plural category constants as defined by Unicode CLDR.
// Not all languages use all categories.
const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralTwo   = "two"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

// Plural styles.
const (
	PluralCardinal = "cardinal"
	PluralOrdinal  = "ordinal"
)

var pluralForms = map[plural.Form]string{
	plural.Other: PluralOther,
	plural.Zero:  PluralZero,
	plural.One:   PluralOne,
	plural.Two:   PluralTwo,
	plural.Few:   PluralFew,
	plural.Many:  PluralMany,
}

// PluralFormat selects the CLDR plural category of a number for a locale.
type PluralFormat struct {
	rules *plural.Rules
	tag   language.Tag
	style string
}

// NewPluralFormat builds a plural selector. Recognised option: style
// ("cardinal" default, or "ordinal").
func NewPluralFormat(locale string, opts Options) (*PluralFormat, error) {
	tag, err := parseTag(locale)
	if err != nil {
		return nil, err
	}

	style, err := opts.oneOf("style", PluralCardinal, PluralOrdinal)
	if err != nil {
		return nil, err
	}

	pf := &PluralFormat{tag: tag, style: PluralCardinal, rules: plural.Cardinal}
	if style == PluralOrdinal {
		pf.style = PluralOrdinal
		pf.rules = plural.Ordinal
	}
	return pf, nil
}

// Style returns the resolved style.
func (p *PluralFormat) Style() string {
	return p.style
}

// Format returns the plural category for n.
func (p *PluralFormat) Format(n float64) (string, error) {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return "", fmt.Errorf("%w: plural value is not finite", ErrInvalidValue)
	}
	i, v, w, f, t := pluralOperands(n)
	return pluralForms[p.rules.MatchPlural(p.tag, i, v, w, f, t)], nil
}

// pluralOperands computes the CLDR operands of |n|: integer digits i,
// visible fraction digit count v (with and without trailing zeros: v, w)
// and the fraction digits f, t.
func pluralOperands(n float64) (i, v, w, f, t int) {
	s := strconv.FormatFloat(math.Abs(n), 'f', -1, 64)
	intPart, frac, _ := strings.Cut(s, ".")

	// Rules only look at i modulo powers of ten up to 10^6.
	if len(intPart) > 12 {
		intPart = intPart[len(intPart)-12:]
	}
	i, _ = strconv.Atoi(intPart)

	if len(frac) > 9 {
		frac = frac[:9]
	}
	v = len(frac)
	if v > 0 {
		f, _ = strconv.Atoi(frac)
	}
	trimmed := strings.TrimRight(frac, "0")
	w = len(trimmed)
	if w > 0 {
		t, _ = strconv.Atoi(trimmed)
	}
	return i, v, w, f, t
}

func parseTag(locale string) (language.Tag, error) {
	if strings.TrimSpace(locale) == "" {
		return language.Und, ErrEmptyLanguage
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und, fmt.Errorf("%w: locale %q: %w", ErrInvalidOption, locale, err)
	}
	return tag, nil
}
