package i18n

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Number styles.
const (
	NumberDecimal  = "decimal"
	NumberPercent  = "percent"
	NumberCurrency = "currency"
)

// NumberFormat formats numbers for a locale.
type NumberFormat struct {
	printer         *message.Printer
	numberOpts      []number.Option
	style           string
	display         string
	currencyPattern string
	unit            currency.Unit
	tag             language.Tag
}

// NewNumberFormat builds a number formatter. Recognised options: style
// (decimal, percent, currency), currency (ISO 4217 code, required for the
// currency style), currencyDisplay (symbol, narrowSymbol, code, name),
// useGrouping, minimumIntegerDigits, minimum/maximumFractionDigits and
// minimum/maximumSignificantDigits. Out-of-range or inconsistent digit
// options are errors.
func NewNumberFormat(reg *Registry, locale string, opts Options) (*NumberFormat, error) {
	tag, err := parseTag(locale)
	if err != nil {
		return nil, err
	}

	nf := &NumberFormat{
		tag:             tag,
		printer:         message.NewPrinter(tag),
		style:           NumberDecimal,
		display:         "symbol",
		currencyPattern: "{symbol}{amount}",
	}
	if reg != nil {
		if nd, ok := reg.number(locale); ok && nd.CurrencyPattern != "" {
			nf.currencyPattern = nd.CurrencyPattern
		}
	}

	style, err := opts.oneOf("style", NumberDecimal, NumberPercent, NumberCurrency)
	if err != nil {
		return nil, err
	}
	if style != "" {
		nf.style = style
	}

	if _, err := opts.oneOf("localeMatcher", "lookup", "best fit"); err != nil {
		return nil, err
	}

	defMinFrac, defMaxFrac := 0, 3
	switch nf.style {
	case NumberPercent:
		defMaxFrac = 0
	case NumberCurrency:
		code, ok, err := opts.String("currency")
		if err != nil {
			return nil, err
		}
		if !ok || code == "" {
			return nil, fmt.Errorf("%w: currency code is required with currency style", ErrInvalidOption)
		}
		unit, err := currency.ParseISO(code)
		if err != nil {
			return nil, fmt.Errorf("%w: currency %q: %w", ErrInvalidOption, code, err)
		}
		nf.unit = unit
		scale, _ := currency.Standard.Rounding(unit)
		defMinFrac, defMaxFrac = scale, scale

		display, err := opts.oneOf("currencyDisplay", "symbol", "narrowSymbol", "code", "name")
		if err != nil {
			return nil, err
		}
		if display != "" {
			nf.display = display
		}
	}

	numberOpts, err := digitOptions(opts, defMinFrac, defMaxFrac)
	if err != nil {
		return nil, err
	}

	grouping, ok, err := opts.Bool("useGrouping")
	if err != nil {
		return nil, err
	}
	if ok && !grouping {
		numberOpts = append(numberOpts, number.NoSeparator())
	}
	nf.numberOpts = numberOpts

	return nf, nil
}

func digitOptions(opts Options, defMinFrac, defMaxFrac int) ([]number.Option, error) {
	var out []number.Option

	minInt, ok, err := opts.intRange("minimumIntegerDigits", 1, 21)
	if err != nil {
		return nil, err
	}
	if ok {
		out = append(out, number.MinIntegerDigits(minInt))
	}

	minSig, hasMinSig, err := opts.intRange("minimumSignificantDigits", 1, 21)
	if err != nil {
		return nil, err
	}
	maxSig, hasMaxSig, err := opts.intRange("maximumSignificantDigits", 1, 21)
	if err != nil {
		return nil, err
	}
	if hasMinSig && hasMaxSig && minSig > maxSig {
		return nil, fmt.Errorf("%w: minimumSignificantDigits %d exceeds maximumSignificantDigits %d", ErrInvalidOption, minSig, maxSig)
	}
	if hasMaxSig {
		return append(out, number.Precision(maxSig)), nil
	}

	minFrac, hasMinFrac, err := opts.intRange("minimumFractionDigits", 0, 20)
	if err != nil {
		return nil, err
	}
	maxFrac, hasMaxFrac, err := opts.intRange("maximumFractionDigits", 0, 20)
	if err != nil {
		return nil, err
	}
	switch {
	case hasMinFrac && hasMaxFrac:
		if minFrac > maxFrac {
			return nil, fmt.Errorf("%w: minimumFractionDigits %d exceeds maximumFractionDigits %d", ErrInvalidOption, minFrac, maxFrac)
		}
	case hasMinFrac:
		maxFrac = max(minFrac, defMaxFrac)
	case hasMaxFrac:
		minFrac = min(maxFrac, defMinFrac)
	default:
		minFrac, maxFrac = defMinFrac, defMaxFrac
	}

	return append(out, number.MinFractionDigits(minFrac), number.MaxFractionDigits(maxFrac)), nil
}

// Style returns the resolved style.
func (f *NumberFormat) Style() string {
	return f.style
}

// Format formats v.
func (f *NumberFormat) Format(v float64) (string, error) {
	if math.IsNaN(v) {
		return "NaN", nil
	}

	switch f.style {
	case NumberPercent:
		return f.printer.Sprint(number.Percent(v, f.numberOpts...)), nil
	case NumberCurrency:
		return f.formatCurrency(v), nil
	}
	return f.printer.Sprint(number.Decimal(v, f.numberOpts...)), nil
}

func (f *NumberFormat) formatCurrency(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	amount := f.printer.Sprint(number.Decimal(v, f.numberOpts...))

	var symbol string
	switch f.display {
	case "code", "name":
		symbol = f.unit.String()
	case "narrowSymbol":
		symbol = f.printer.Sprint(currency.NarrowSymbol(f.unit))
	default:
		symbol = f.printer.Sprint(currency.Symbol(f.unit))
	}

	pattern := f.currencyPattern
	if f.display == "code" || f.display == "name" {
		pattern = strings.Replace(pattern, "{symbol}{amount}", "{symbol} {amount}", 1)
	}
	out := strings.NewReplacer("{symbol}", symbol, "{amount}", amount).Replace(pattern)
	return sign + out
}
