package parameter

import (
	"testing"
)

func descriptorOf(t *testing.T, name string) Descriptor {
	t.Helper()
	d, ok := LookupByName(name)
	if !ok {
		t.Fatalf("no descriptor %q", name)
	}
	return d
}

// ─── Scalars ───────────────────────────────────────────────────────

func TestCoerce_Int32(t *testing.T) {
	d := descriptorOf(t, "CO2Level")
	tests := []struct {
		raw    string
		want   int32
		wantOK bool
	}{
		{"850", 850, true},
		{"-12", -12, true},
		{" 42 ", 42, true},
		{"2147483647", 2147483647, true},
		{"2147483648", 0, false},
		{"12.5", 0, false},
		{"", 0, false},
		{"abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v, ok := Coerce(d, tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("Coerce(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if ok && (v.Kind() != KindInt32 || v.Int32() != tt.want) {
				t.Errorf("Coerce(%q) = %v, want %d", tt.raw, v, tt.want)
			}
		})
	}
}

func TestCoerce_Float64(t *testing.T) {
	d := descriptorOf(t, "TemperatureOutdoor")
	tests := []struct {
		raw    string
		want   float64
		wantOK bool
	}{
		{"12.5", 12.5, true},
		{"-3.25", -3.25, true},
		{"7", 7, true},
		{"-", 0, true},
		{"12,5", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"", 0, false},
		{"--", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v, ok := Coerce(d, tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("Coerce(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if ok && v.Float64() != tt.want {
				t.Errorf("Coerce(%q) = %v, want %v", tt.raw, v.Float64(), tt.want)
			}
		})
	}
}

func TestCoerce_StringVerbatim(t *testing.T) {
	d := descriptorOf(t, "ProductName")
	for _, raw := range []string{"KWL EC 300 W", "", "  padded  ", "-"} {
		v, ok := Coerce(d, raw)
		if !ok || v.Text() != raw {
			t.Errorf("Coerce(%q) = %q, %v", raw, v.Text(), ok)
		}
	}
}

func TestCoerce_Bool(t *testing.T) {
	d := descriptorOf(t, "BoosterActive")
	tests := []struct {
		raw    string
		want   bool
		wantOK bool
	}{
		{"1", true, true},
		{"0", false, true},
		{"true", true, true},
		{"false", false, true},
		{"2", false, false},
		{"yes", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v, ok := Coerce(d, tt.raw)
			if ok != tt.wantOK || (ok && v.Bool() != tt.want) {
				t.Errorf("Coerce(%q) = %v, %v; want %v, %v", tt.raw, v.Bool(), ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCoerce_Date(t *testing.T) {
	d := descriptorOf(t, "SystemDate")
	tests := []struct {
		raw    string
		want   Date
		wantOK bool
	}{
		{"24.12.2025", Date{2025, 12, 24}, true},
		{"2025-12-24", Date{2025, 12, 24}, true},
		{"31.02.2025", Date{}, false},
		{"12/24/2025", Date{}, false},
		{"", Date{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v, ok := Coerce(d, tt.raw)
			if ok != tt.wantOK || v.Date() != tt.want {
				t.Errorf("Coerce(%q) = %v, %v; want %v, %v", tt.raw, v.Date(), ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCoerce_TimeOfDay(t *testing.T) {
	d := descriptorOf(t, "SystemTime")
	tests := []struct {
		raw    string
		want   TimeOfDay
		wantOK bool
	}{
		{"14:30:15", NewTimeOfDay(14, 30, 15), true},
		{"06:05", NewTimeOfDay(6, 5, 0), true},
		{"24:00", 0, false},
		{"noon", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v, ok := Coerce(d, tt.raw)
			if ok != tt.wantOK || v.TimeOfDay() != tt.want {
				t.Errorf("Coerce(%q) = %v, %v; want %v, %v", tt.raw, v.TimeOfDay(), ok, tt.want, tt.wantOK)
			}
		})
	}
}

// ─── Enumerations ──────────────────────────────────────────────────

func TestCoerce_Enumeration(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   any
		wantOK bool
	}{
		{"OperationMode", "1", OperationManual, true},
		{"OperationMode", "0", OperationAutomatic, true},
		{"OperationMode", "2", nil, false},
		{"OperationMode", "-1", nil, false},
		{"VentilationLevel", "2", VentilationLevel2, true},
		{"VentilationLevel", "4", VentilationLevel4, true},
		{"VentilationLevel", "5", nil, false},
		{"VentilationLevel", "two", nil, false},
		{"WeekProgram", "4", WeekProgramCustom, true},
		{"ExternalContactFunction", "6", ContactStandby, true},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.raw, func(t *testing.T) {
			v, ok := Coerce(descriptorOf(t, tt.name), tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("Coerce(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if ok && v.Interface() != tt.want {
				t.Errorf("Coerce(%q) = %#v, want %#v", tt.raw, v.Interface(), tt.want)
			}
		})
	}
}

func TestEnumerations_HaveZeroMember(t *testing.T) {
	for k := KindOperationMode; k <= KindWeekProgram; k++ {
		if !k.IsEnum() {
			t.Errorf("%d is in the enumeration range but IsEnum() is false", k)
			continue
		}
		if !IsMember(k, 0) {
			t.Errorf("%s has no member with ordinal 0", k)
		}
	}
}

func TestEnumerations_MarshalText(t *testing.T) {
	got, err := VentilationLevel2.MarshalText()
	if err != nil || string(got) != "Level2" {
		t.Errorf("VentilationLevel2.MarshalText() = %q, %v", got, err)
	}
	if s := OperationMode(9).String(); s != "9" {
		t.Errorf("OperationMode(9).String() = %q, want %q", s, "9")
	}
	if m := Members(KindOperationMode); len(m) != 2 || m[1] != "Manual" {
		t.Errorf("Members(OperationMode) = %v", m)
	}
	if Members(KindInt32) != nil {
		t.Error("Members(int32) should be nil")
	}
}

// ─── Values ────────────────────────────────────────────────────────

func TestValue_Raw(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"int", Int32Value(-4), "-4"},
		{"float", Float64Value(21.5), "21.5"},
		{"string", StringValue("abc"), "abc"},
		{"date", DateValue(Date{2026, 3, 1}), "01.03.2026"},
		{"time", TimeOfDayValue(NewTimeOfDay(7, 5, 0)), "07:05"},
		{"time with seconds", TimeOfDayValue(NewTimeOfDay(7, 5, 9)), "07:05:09"},
		{"bool", BoolValue(true), "1"},
		{"enum", EnumValue(KindVentilationLevel, 3), "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Raw(); got != tt.want {
				t.Errorf("Raw() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValue_RawRoundTrip(t *testing.T) {
	for _, d := range All() {
		var v Value
		switch {
		case d.Kind == KindInt32:
			v = Int32Value(17)
		case d.Kind == KindFloat64:
			v = Float64Value(-2.75)
		case d.Kind == KindString:
			v = StringValue("text")
		case d.Kind == KindDate:
			v = DateValue(Date{2024, 2, 29})
		case d.Kind == KindTimeOfDay:
			v = TimeOfDayValue(NewTimeOfDay(23, 59, 0))
		case d.Kind == KindBool:
			v = BoolValue(true)
		case d.Kind.IsEnum():
			v = EnumValue(d.Kind, 1)
		}

		got, ok := Coerce(d, v.Raw())
		if !ok || got != v {
			t.Errorf("%s: Coerce(Raw(%v)) = %v, %v", d.Name, v, got, ok)
		}
	}
}

func TestValue_Numeric(t *testing.T) {
	if f, ok := BoolValue(true).Numeric(); !ok || f != 1 {
		t.Errorf("bool Numeric() = %v, %v", f, ok)
	}
	if f, ok := EnumValue(KindOperationMode, 1).Numeric(); !ok || f != 1 {
		t.Errorf("enum Numeric() = %v, %v", f, ok)
	}
	if _, ok := StringValue("x").Numeric(); ok {
		t.Error("string reported as numeric")
	}
}

func TestDate_MarshalText(t *testing.T) {
	if b, _ := (Date{}).MarshalText(); len(b) != 0 {
		t.Errorf("zero Date marshals to %q", b)
	}
	if b, _ := (Date{2025, 1, 9}).MarshalText(); string(b) != "2025-01-09" {
		t.Errorf("Date marshals to %q", b)
	}
}
