package i18n

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Component option values.
const (
	styleNumeric = "numeric"
	style2Digit  = "2-digit"
	styleNarrow  = "narrow"
	styleShort   = "short"
	styleLong    = "long"
)

// DateTimeFormat formats instants for a locale using component options in
// the style of ECMA-402: weekday, era, year, month, day, hour, minute,
// second, timeZoneName, hour12 and timeZone.
type DateTimeFormat struct {
	cal          *CalendarData
	loc          *time.Location
	weekday      string
	era          string
	year         string
	month        string
	day          string
	hour         string
	minute       string
	second       string
	timeZoneName string
	hour12       bool
}

// NewDateTimeFormat builds a date/time formatter. When no date or time
// component is requested, year, month and day are shown numerically.
// Unknown option values and unknown time zones are errors.
func NewDateTimeFormat(reg *Registry, locale string, opts Options) (*DateTimeFormat, error) {
	if _, err := parseTag(locale); err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, fmt.Errorf("%w: nil registry", ErrNoLocaleData)
	}
	cal, ok := reg.calendar(locale)
	if !ok {
		return nil, fmt.Errorf("%w: calendar for %q", ErrNoLocaleData, locale)
	}

	f := &DateTimeFormat{cal: cal, hour12: cal.Hour12}

	fields := []struct {
		dst     *string
		key     string
		allowed []string
	}{
		{&f.weekday, "weekday", []string{styleNarrow, styleShort, styleLong}},
		{&f.era, "era", []string{styleNarrow, styleShort, styleLong}},
		{&f.year, "year", []string{styleNumeric, style2Digit}},
		{&f.month, "month", []string{styleNumeric, style2Digit, styleNarrow, styleShort, styleLong}},
		{&f.day, "day", []string{styleNumeric, style2Digit}},
		{&f.hour, "hour", []string{styleNumeric, style2Digit}},
		{&f.minute, "minute", []string{styleNumeric, style2Digit}},
		{&f.second, "second", []string{styleNumeric, style2Digit}},
		{&f.timeZoneName, "timeZoneName", []string{styleShort, styleLong}},
	}
	for _, fld := range fields {
		v, err := opts.oneOf(fld.key, fld.allowed...)
		if err != nil {
			return nil, err
		}
		*fld.dst = v
	}

	if _, err := opts.oneOf("localeMatcher", "lookup", "best fit"); err != nil {
		return nil, err
	}
	if _, err := opts.oneOf("formatMatcher", "basic", "best fit"); err != nil {
		return nil, err
	}

	h12, ok, err := opts.Bool("hour12")
	if err != nil {
		return nil, err
	}
	if ok {
		f.hour12 = h12
	}

	tz, ok, err := opts.String("timeZone")
	if err != nil {
		return nil, err
	}
	if ok && tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("%w: timeZone %q: %w", ErrInvalidOption, tz, err)
		}
		f.loc = loc
	}

	if f.weekday == "" && f.year == "" && f.month == "" && f.day == "" &&
		f.hour == "" && f.minute == "" && f.second == "" {
		f.year, f.month, f.day = styleNumeric, styleNumeric, styleNumeric
	}

	return f, nil
}

// Format formats t.
func (f *DateTimeFormat) Format(t time.Time) (string, error) {
	if f.loc != nil {
		t = t.In(f.loc)
	}

	date := f.formatDate(t)
	clock := f.formatTime(t)

	switch {
	case date != "" && clock != "":
		return fillPattern(f.cal.DateTime, map[string]string{"date": date, "time": clock}), nil
	case date != "":
		return date, nil
	}
	return clock, nil
}

func (f *DateTimeFormat) formatDate(t time.Time) string {
	values := make(map[string]string, 3)

	year := t.Year()
	if f.era != "" && year <= 0 {
		year = 1 - year
	}
	switch f.year {
	case styleNumeric:
		values["year"] = strconv.Itoa(year)
	case style2Digit:
		values["year"] = fmt.Sprintf("%02d", year%100)
	}

	m := int(t.Month()) - 1
	textual := false
	switch f.month {
	case styleNumeric:
		values["month"] = strconv.Itoa(m + 1)
	case style2Digit:
		values["month"] = fmt.Sprintf("%02d", m+1)
	case styleNarrow:
		values["month"], textual = pick(f.cal.MonthsNarrow, m), true
	case styleShort:
		values["month"], textual = pick(f.cal.MonthsShort, m), true
	case styleLong:
		values["month"], textual = pick(f.cal.Months, m), true
	}

	switch f.day {
	case styleNumeric:
		values["day"] = strconv.Itoa(t.Day())
	case style2Digit:
		values["day"] = fmt.Sprintf("%02d", t.Day())
	}

	pattern := f.cal.NumericDate
	if textual {
		pattern = f.cal.TextDate
	}
	date := renderSparse(pattern, values)

	if f.era != "" {
		eras := f.cal.Eras
		if f.era == styleLong && len(f.cal.ErasLong) == 2 {
			eras = f.cal.ErasLong
		}
		idx := 1
		if t.Year() <= 0 {
			idx = 0
		}
		if era := pick(eras, idx); era != "" {
			date = strings.TrimSpace(date + " " + era)
		}
	}

	if f.weekday != "" {
		wd := int(t.Weekday())
		var name string
		switch f.weekday {
		case styleNarrow:
			name = pick(f.cal.WeekdaysNarrow, wd)
		case styleShort:
			name = pick(f.cal.WeekdaysShort, wd)
		default:
			name = pick(f.cal.Weekdays, wd)
		}
		if date == "" {
			return name
		}
		return fillPattern(f.cal.WeekdayDate, map[string]string{"weekday": name, "date": date})
	}

	return date
}

func (f *DateTimeFormat) formatTime(t time.Time) string {
	if f.hour == "" && f.minute == "" && f.second == "" {
		return ""
	}

	sep := f.cal.TimeSeparator
	if sep == "" {
		sep = ":"
	}

	var parts []string
	if f.hour != "" {
		h := t.Hour()
		if f.hour12 {
			h %= 12
			if h == 0 {
				h = 12
			}
		}
		pad := f.hour == style2Digit || (!f.hour12 && f.minute != "")
		parts = append(parts, digits(h, pad))
	}
	if f.minute != "" {
		parts = append(parts, digits(t.Minute(), f.minute == style2Digit || len(parts) > 0))
	}
	if f.second != "" {
		parts = append(parts, digits(t.Second(), f.second == style2Digit || len(parts) > 0))
	}

	out := strings.Join(parts, sep)
	if f.hour != "" && f.hour12 {
		period := 0
		if t.Hour() >= 12 {
			period = 1
		}
		if p := pick(f.cal.DayPeriods, period); p != "" {
			out += " " + p
		}
	}

	switch f.timeZoneName {
	case styleShort:
		out += " " + t.Format("MST")
	case styleLong:
		out += " " + t.Location().String()
	}

	return out
}

func digits(n int, pad bool) string {
	if pad {
		return fmt.Sprintf("%02d", n)
	}
	return strconv.Itoa(n)
}

func pick(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return ""
	}
	return names[i]
}

// fillPattern replaces every {name} placeholder present in values.
func fillPattern(pattern string, values map[string]string) string {
	args := make([]string, 0, len(values)*2)
	for k, v := range values {
		args = append(args, "{"+k+"}", v)
	}
	return strings.NewReplacer(args...).Replace(pattern)
}

// renderSparse fills a pattern where some placeholders may be absent.
// Absent placeholders are dropped together with the literal that follows
// them, so "{month} {day}, {year}" with month and year only yields
// "January 2006".
func renderSparse(pattern string, values map[string]string) string {
	var (
		b           strings.Builder
		pending     string
		havePending bool
		emitted     bool
	)

	for len(pattern) > 0 {
		open := strings.IndexByte(pattern, '{')
		if open < 0 {
			break
		}
		literal := pattern[:open]
		rest := pattern[open+1:]
		closeIdx := strings.IndexByte(rest, '}')
		if closeIdx < 0 {
			break
		}
		name := rest[:closeIdx]
		pattern = rest[closeIdx+1:]

		if emitted && !havePending {
			pending, havePending = literal, true
		}

		v, ok := values[name]
		if !ok || v == "" {
			continue
		}
		if havePending {
			b.WriteString(pending)
		}
		b.WriteString(v)
		emitted = true
		havePending = false
	}

	return b.String()
}
