package i18n

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Relative units, from smallest to largest.
const (
	UnitSecond = "second"
	UnitMinute = "minute"
	UnitHour   = "hour"
	UnitDay    = "day"
	UnitMonth  = "month"
	UnitYear   = "year"
)

// Relative styles.
const (
	RelativeBestFit = "best fit"
	RelativeNumeric = "numeric"
)

var relativeUnits = []string{UnitSecond, UnitMinute, UnitHour, UnitDay, UnitMonth, UnitYear}

// Thresholds decide when relative formatting moves to the next larger unit:
// a distance of N seconds is shown in seconds while N < Second, and so on.
type Thresholds struct {
	Second int
	Minute int
	Hour   int
	Day    int
	Month  int
}

// DefaultThresholds are the process-wide thresholds at startup.
var DefaultThresholds = Thresholds{Second: 45, Minute: 45, Hour: 22, Day: 26, Month: 11}

func (t Thresholds) forUnit(unit string) (int, bool) {
	switch unit {
	case UnitSecond:
		return t.Second, true
	case UnitMinute:
		return t.Minute, true
	case UnitHour:
		return t.Hour, true
	case UnitDay:
		return t.Day, true
	case UnitMonth:
		return t.Month, true
	}
	return 0, false
}

var (
	thresholdsMu sync.RWMutex
	thresholds   = DefaultThresholds

	// overrideMu serializes WithRelativeThresholds so concurrent overrides
	// cannot interleave their save and restore.
	overrideMu sync.Mutex
)

// RelativeThresholds returns the current process-wide thresholds.
func RelativeThresholds() Thresholds {
	thresholdsMu.RLock()
	defer thresholdsMu.RUnlock()
	return thresholds
}

// SetRelativeThresholds installs t process-wide and returns the previous
// thresholds.
func SetRelativeThresholds(t Thresholds) Thresholds {
	thresholdsMu.Lock()
	defer thresholdsMu.Unlock()
	prev := thresholds
	thresholds = t
	return prev
}

// WithRelativeThresholds runs fn with t installed and restores the previous
// thresholds afterwards, also when fn panics.
func WithRelativeThresholds(t Thresholds, fn func()) {
	overrideMu.Lock()
	defer overrideMu.Unlock()

	prev := SetRelativeThresholds(t)
	defer SetRelativeThresholds(prev)

	fn()
}

// RelativeFormat formats the distance between an instant and "now" as
// text such as "3 days ago", "in 2 hours" or "yesterday".
type RelativeFormat struct {
	data   *RelativeData
	plural *PluralFormat
	number *NumberFormat
	style  string
	units  string
}

// NewRelativeFormat builds a relative-time formatter. Recognised options:
// style ("best fit" default, or "numeric") and units (forces one of
// second, minute, hour, day, month, year).
func NewRelativeFormat(reg *Registry, locale string, opts Options) (*RelativeFormat, error) {
	if reg == nil {
		return nil, fmt.Errorf("%w: nil registry", ErrNoLocaleData)
	}

	style, err := opts.oneOf("style", RelativeBestFit, RelativeNumeric)
	if err != nil {
		return nil, err
	}
	if style == "" {
		style = RelativeBestFit
	}

	units, err := opts.oneOf("units", relativeUnits...)
	if err != nil {
		return nil, err
	}

	data, ok := reg.relative(locale)
	if !ok {
		return nil, fmt.Errorf("%w: relative time for %q", ErrNoLocaleData, locale)
	}

	pf, err := NewPluralFormat(locale, nil)
	if err != nil {
		return nil, err
	}
	nf, err := NewNumberFormat(reg, locale, nil)
	if err != nil {
		return nil, err
	}

	return &RelativeFormat{data: data, plural: pf, number: nf, style: style, units: units}, nil
}

// Format formats t relative to now.
func (f *RelativeFormat) Format(t, now time.Time) (string, error) {
	if t.IsZero() {
		t = now
	}

	diff := relativeDiff(now, t)
	unit := f.units
	if unit == "" {
		unit = selectUnit(diff, RelativeThresholds())
	}
	value := diff[unit]

	fields, ok := f.data.Units[unit]
	if !ok {
		return "", fmt.Errorf("%w: no %s strings", ErrNoLocaleData, unit)
	}

	if f.style != RelativeNumeric {
		if idiom, ok := fields.Relative[strconv.Itoa(value)]; ok {
			return idiom, nil
		}
	}

	forms := fields.Future
	if value < 0 {
		forms = fields.Past
	}
	abs := math.Abs(float64(value))

	category, err := f.plural.Format(abs)
	if err != nil {
		return "", err
	}
	pattern, ok := forms[category]
	if !ok {
		pattern, ok = forms[PluralOther]
	}
	if !ok {
		return "", fmt.Errorf("%w: no %s %s string for %s", ErrNoLocaleData, unit, direction(value), category)
	}

	count, err := f.number.Format(abs)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(pattern, "{0}", count), nil
}

func direction(v int) string {
	if v < 0 {
		return "past"
	}
	return "future"
}

func selectUnit(diff map[string]int, th Thresholds) string {
	for _, unit := range relativeUnits {
		limit, ok := th.forUnit(unit)
		if !ok {
			return unit
		}
		if abs(diff[unit]) < limit {
			return unit
		}
	}
	return UnitYear
}

// relativeDiff returns the rounded distance from → to in each unit.
// Days count calendar days in the location of from.
func relativeDiff(from, to time.Time) map[string]int {
	ms := float64(to.Sub(from).Milliseconds())
	second := math.Round(ms / 1000)
	minute := math.Round(second / 60)
	hour := math.Round(minute / 60)

	day := float64(calendarDays(from, to.In(from.Location())))
	rawYears := day * 400 / 146097

	return map[string]int{
		UnitSecond: int(second),
		UnitMinute: int(minute),
		UnitHour:   int(hour),
		UnitDay:    int(day),
		UnitMonth:  int(math.Round(rawYears * 12)),
		UnitYear:   int(math.Round(rawYears)),
	}
}

func calendarDays(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(math.Round(b.Sub(a).Hours() / 24))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
