package parameter

import (
	"fmt"
	"strconv"
	"time"
)

// Date is a calendar date without a time zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// IsZero reports whether d is the zero date (never set).
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns midnight UTC at the start of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalText renders d as YYYY-MM-DD, or as an empty string when unset.
func (d Date) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return []byte{}, nil
	}
	return []byte(d.String()), nil
}

// TimeOfDay is a wall-clock time as seconds since midnight.
type TimeOfDay int32

// NewTimeOfDay builds a TimeOfDay from its components.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(hour*3600 + minute*60 + second)
}

// Hour returns the hour component (0-23).
func (t TimeOfDay) Hour() int { return int(t) / 3600 }

// Minute returns the minute component (0-59).
func (t TimeOfDay) Minute() int { return int(t) % 3600 / 60 }

// Second returns the second component (0-59).
func (t TimeOfDay) Second() int { return int(t) % 60 }

// String formats t as HH:MM:SS.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// MarshalText implements encoding.TextMarshaler.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Value is a typed parameter value. The zero Value has KindInvalid.
//
// Value is comparable: two values are equal when they have the same kind
// and payload.
type Value struct {
	kind Kind
	i    int32
	f    float64
	s    string
	d    Date
	t    TimeOfDay
	b    bool
}

// Int32Value returns a KindInt32 value.
func Int32Value(v int32) Value { return Value{kind: KindInt32, i: v} }

// Float64Value returns a KindFloat64 value.
func Float64Value(v float64) Value { return Value{kind: KindFloat64, f: v} }

// StringValue returns a KindString value.
func StringValue(v string) Value { return Value{kind: KindString, s: v} }

// DateValue returns a KindDate value.
func DateValue(v Date) Value { return Value{kind: KindDate, d: v} }

// TimeOfDayValue returns a KindTimeOfDay value.
func TimeOfDayValue(v TimeOfDay) Value { return Value{kind: KindTimeOfDay, t: v} }

// BoolValue returns a KindBool value.
func BoolValue(v bool) Value { return Value{kind: KindBool, b: v} }

// EnumValue returns a value of enumeration kind k with the given ordinal.
// It does not check membership; use IsMember for that.
func EnumValue(k Kind, ordinal int32) Value { return Value{kind: k, i: ordinal} }

// Kind returns the value's kind.
func (v Value) Kind() Kind { return v.kind }

// Int32 returns the payload of a KindInt32 value.
func (v Value) Int32() int32 { return v.i }

// Float64 returns the payload of a KindFloat64 value.
func (v Value) Float64() float64 { return v.f }

// Text returns the payload of a KindString value.
func (v Value) Text() string { return v.s }

// Date returns the payload of a KindDate value.
func (v Value) Date() Date { return v.d }

// TimeOfDay returns the payload of a KindTimeOfDay value.
func (v Value) TimeOfDay() TimeOfDay { return v.t }

// Bool returns the payload of a KindBool value.
func (v Value) Bool() bool { return v.b }

// Ordinal returns the ordinal of an enumeration value.
func (v Value) Ordinal() int32 { return v.i }

// Interface returns the payload as its Go type. Enumeration values are
// returned as their typed constant (e.g. OperationMode).
func (v Value) Interface() any {
	switch v.kind {
	case KindInt32:
		return v.i
	case KindFloat64:
		return v.f
	case KindString:
		return v.s
	case KindDate:
		return v.d
	case KindTimeOfDay:
		return v.t
	case KindBool:
		return v.b
	case KindInvalid:
		return nil
	}
	return enumTyped(v.kind, v.i)
}

// Numeric returns the value as a float64 for kinds with a numeric
// representation. Bools map to 0/1 and enumerations to their ordinal.
func (v Value) Numeric() (float64, bool) {
	switch v.kind {
	case KindInt32:
		return float64(v.i), true
	case KindFloat64:
		return v.f, true
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	}
	if v.kind.IsEnum() {
		return float64(v.i), true
	}
	return 0, false
}

// Raw formats the value the way the device expects it in a write request.
func (v Value) Raw() string {
	switch v.kind {
	case KindInt32:
		return strconv.FormatInt(int64(v.i), 10)
	case KindFloat64:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindString:
		return v.s
	case KindDate:
		return fmt.Sprintf("%02d.%02d.%04d", v.d.Day, int(v.d.Month), v.d.Year)
	case KindTimeOfDay:
		if v.t.Second() != 0 {
			return v.t.String()
		}
		return fmt.Sprintf("%02d:%02d", v.t.Hour(), v.t.Minute())
	case KindBool:
		if v.b {
			return "1"
		}
		return "0"
	case KindInvalid:
		return ""
	}
	return strconv.FormatInt(int64(v.i), 10)
}

// String implements fmt.Stringer for logging.
func (v Value) String() string {
	if v.kind.IsEnum() {
		return enumString(v.kind, v.i)
	}
	switch v.kind {
	case KindDate:
		return v.d.String()
	case KindTimeOfDay:
		return v.t.String()
	}
	return v.Raw()
}
