package parameter

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Accepted text layouts for dates and times of day.
const (
	// dateLayoutDevice is the layout the unit uses in its XML pages.
	dateLayoutDevice = "02.01.2006"

	// dateLayoutISO is accepted for values written through the API.
	dateLayoutISO = "2006-01-02"

	timeLayoutSeconds = "15:04:05"
	timeLayoutMinutes = "15:04"
)

// unavailable is the placeholder the unit sends for a float sensor that has
// no reading. It is stored as 0.
const unavailable = "-"

// Coerce interprets raw device text according to d's kind.
//
// The boolean result reports whether raw parsed. A false result means "no
// change": callers keep whatever value they held before.
//
// Rules:
//   - int32: base-10 integer within the int32 range
//   - float64: decimal with '.' separator; the placeholder "-" yields 0
//   - string: taken verbatim
//   - date: DD.MM.YYYY or YYYY-MM-DD
//   - time of day: HH:MM:SS or HH:MM
//   - bool: 0/1/true/false (strconv.ParseBool)
//   - enumerations: base-10 integer that is a declared member
//
// Surrounding whitespace is ignored for every kind except string.
func Coerce(d Descriptor, raw string) (Value, bool) {
	return parse(d.Kind, raw)
}

func parse(k Kind, raw string) (Value, bool) {
	if k == KindString {
		return StringValue(raw), true
	}
	raw = strings.TrimSpace(raw)

	switch k {
	case KindInt32:
		n, ok := parseInt32(raw)
		if !ok {
			return Value{}, false
		}
		return Int32Value(n), true

	case KindFloat64:
		if raw == unavailable {
			return Float64Value(0), true
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return Value{}, false
		}
		return Float64Value(f), true

	case KindDate:
		for _, layout := range []string{dateLayoutDevice, dateLayoutISO} {
			if t, err := time.Parse(layout, raw); err == nil {
				return DateValue(DateOf(t)), true
			}
		}
		return Value{}, false

	case KindTimeOfDay:
		for _, layout := range []string{timeLayoutSeconds, timeLayoutMinutes} {
			if t, err := time.Parse(layout, raw); err == nil {
				return TimeOfDayValue(NewTimeOfDay(t.Hour(), t.Minute(), t.Second())), true
			}
		}
		return Value{}, false

	case KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return Value{}, false
		}
		return BoolValue(b), true
	}

	if k.IsEnum() {
		n, ok := parseInt32(raw)
		if !ok || !IsMember(k, n) {
			return Value{}, false
		}
		return EnumValue(k, n), true
	}
	return Value{}, false
}

func parseInt32(raw string) (int32, bool) {
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}
