package i18n

import (
	"embed"
	"fmt"
	"sync"
)

//go:embed localedata/*.yaml
var builtinFS embed.FS

// LocaleData is the locale-specific information the formatter engines need.
// Any section may be nil; engines then fall back along the locale's
// parent chain.
type LocaleData struct {
	Calendar *CalendarData `yaml:"calendar,omitempty" json:"calendar,omitempty"`
	Number   *NumberData   `yaml:"number,omitempty" json:"number,omitempty"`
	Relative *RelativeData `yaml:"relative,omitempty" json:"relative,omitempty"`
	Locale   string        `yaml:"locale" json:"locale"`
	// Parent overrides the dash-truncation parent, e.g. "es-419" → "es".
	Parent string `yaml:"parent,omitempty" json:"parent,omitempty"`
}

// CalendarData holds names and patterns for date/time formatting.
// Patterns use {year}, {month}, {day}, {weekday}, {date} and {time}
// placeholders.
type CalendarData struct {
	NumericDate    string   `yaml:"numeric_date" json:"numeric_date"`
	TextDate       string   `yaml:"text_date" json:"text_date"`
	WeekdayDate    string   `yaml:"weekday_date" json:"weekday_date"`
	DateTime       string   `yaml:"date_time" json:"date_time"`
	TimeSeparator  string   `yaml:"time_separator" json:"time_separator"`
	Months         []string `yaml:"months" json:"months"`
	MonthsShort    []string `yaml:"months_short" json:"months_short"`
	MonthsNarrow   []string `yaml:"months_narrow" json:"months_narrow"`
	Weekdays       []string `yaml:"weekdays" json:"weekdays"`
	WeekdaysShort  []string `yaml:"weekdays_short" json:"weekdays_short"`
	WeekdaysNarrow []string `yaml:"weekdays_narrow" json:"weekdays_narrow"`
	Eras           []string `yaml:"eras" json:"eras"`
	ErasLong       []string `yaml:"eras_long" json:"eras_long"`
	DayPeriods     []string `yaml:"day_periods" json:"day_periods"`
	Hour12         bool     `yaml:"hour12" json:"hour12"`
}

// NumberData holds number formatting patterns not covered by x/text.
type NumberData struct {
	// CurrencyPattern places {symbol} relative to {amount}.
	CurrencyPattern string `yaml:"currency_pattern" json:"currency_pattern"`
}

// RelativeData holds relative-time strings per unit
// (second, minute, hour, day, month, year).
type RelativeData struct {
	Units map[string]RelativeUnit `yaml:"units" json:"units"`
}

// RelativeUnit holds the strings for one unit. Future and Past are keyed by
// plural category and contain a {0} placeholder; Relative is keyed by the
// signed distance ("-1", "0", "1") and holds idioms such as "yesterday".
type RelativeUnit struct {
	Relative map[string]string `yaml:"relative" json:"relative"`
	Future   map[string]string `yaml:"future" json:"future"`
	Past     map[string]string `yaml:"past" json:"past"`
}

var builtinLocaleData = sync.OnceValues(func() ([]LocaleData, error) {
	data, err := LoadLocaleData(builtinFS)
	if err != nil {
		return nil, fmt.Errorf("load builtin locale data: %w", err)
	}
	return data, nil
})

// BuiltinLocaleData returns the embedded datasets (de, en, es, fr).
func BuiltinLocaleData() []LocaleData {
	data, err := builtinLocaleData()
	if err != nil {
		// Embedded files are part of the build; a decode failure is a bug.
		panic(err)
	}
	return data
}
