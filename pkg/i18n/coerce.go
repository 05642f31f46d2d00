package i18n

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ToTime converts a date-like value to time.Time. Accepted inputs are
// time.Time, *time.Time, integer or float epoch milliseconds and RFC 3339
// strings (numeric strings are read as epoch milliseconds).
func ToTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case *time.Time:
		if t == nil {
			return time.Time{}, fmt.Errorf("%w: nil time", ErrInvalidValue)
		}
		return *t, nil
	case string:
		s := strings.TrimSpace(t)
		if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return ts, nil
		}
		if ts, err := time.Parse(time.DateOnly, s); err == nil {
			return ts, nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return fromMillis(f)
		}
		return time.Time{}, fmt.Errorf("%w: cannot read %q as a date", ErrInvalidValue, t)
	}

	f, err := ToNumber(v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: cannot read %T as a date", ErrInvalidValue, v)
	}
	return fromMillis(f)
}

func fromMillis(ms float64) (time.Time, error) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		return time.Time{}, fmt.Errorf("%w: date value is not finite", ErrInvalidValue)
	}
	return time.UnixMilli(int64(ms)), nil
}

// ToNumber converts any Go numeric kind or a numeric string to float64.
func ToNumber(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, n)
		}
		return f, nil
	case fmt.Stringer:
		return ToNumber(n.String())
	}
	return 0, fmt.Errorf("%w: %T is not a number", ErrInvalidValue, v)
}
