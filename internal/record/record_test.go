package record

import (
	"reflect"
	"testing"

	"github.com/nerrad567/easycontrols-gateway/internal/frame"
	"github.com/nerrad567/easycontrols-gateway/internal/parameter"
)

func frameOf(pairs ...string) *frame.Frame {
	f := frame.New("en")
	for i := 0; i+1 < len(pairs); i += 2 {
		f.Set(pairs[i], pairs[i+1])
	}
	return f
}

// ─── Registry consistency ──────────────────────────────────────────

func TestAccessors_CoverRegistry(t *testing.T) {
	for _, d := range parameter.All() {
		acc, ok := accessors[d.Name]
		if !ok {
			t.Errorf("no Record field bound for %s", d.Name)
			continue
		}
		if acc.kind != d.Kind {
			t.Errorf("%s bound as %s, registry says %s", d.Name, acc.kind, d.Kind)
		}
	}
	if len(accessors) != parameter.Len() {
		t.Errorf("accessors = %d, registry = %d", len(accessors), parameter.Len())
	}
	if len(bindings) != len(accessors) {
		t.Errorf("bindings has %d entries but %d distinct names", len(bindings), len(accessors))
	}
}

func TestAccessors_MatchStructFields(t *testing.T) {
	rt := reflect.TypeOf(Record{})
	if rt.NumField() != parameter.Len() {
		t.Errorf("Record has %d fields, registry has %d", rt.NumField(), parameter.Len())
	}
	for i := 0; i < rt.NumField(); i++ {
		if !parameter.IsName(rt.Field(i).Name) {
			t.Errorf("Record field %s is not a registered name", rt.Field(i).Name)
		}
	}
}

// Writing through an accessor must change exactly the field of the same name.
func TestAccessors_TouchOwnField(t *testing.T) {
	for _, d := range parameter.All() {
		var v parameter.Value
		switch {
		case d.Kind == parameter.KindInt32:
			v = parameter.Int32Value(7)
		case d.Kind == parameter.KindFloat64:
			v = parameter.Float64Value(7.5)
		case d.Kind == parameter.KindString:
			v = parameter.StringValue("x")
		case d.Kind == parameter.KindDate:
			v = parameter.DateValue(parameter.Date{Year: 2025, Month: 6, Day: 1})
		case d.Kind == parameter.KindTimeOfDay:
			v = parameter.TimeOfDayValue(parameter.NewTimeOfDay(1, 2, 3))
		case d.Kind == parameter.KindBool:
			v = parameter.BoolValue(true)
		default:
			v = parameter.EnumValue(d.Kind, 1)
		}

		r := New()
		if !r.Set(d.Name, v) {
			t.Errorf("Set(%s) rejected %v", d.Name, v)
			continue
		}

		rv := reflect.ValueOf(*r)
		for i := 0; i < rv.NumField(); i++ {
			name := rv.Type().Field(i).Name
			zero := rv.Field(i).IsZero()
			if name == d.Name && zero {
				t.Errorf("Set(%s) did not change its field", d.Name)
			}
			if name != d.Name && !zero {
				t.Errorf("Set(%s) changed field %s", d.Name, name)
			}
		}
	}
}

// ─── Update ────────────────────────────────────────────────────────

func TestUpdate_AppliesTypedValues(t *testing.T) {
	r := New()
	res := r.Update(frameOf(
		"v00104", "12.5",
		"v00101", "1",
		"v00102", "2",
		"v00000", "KWL EC 300 W R",
		"v00004", "24.12.2025",
		"v00005", "14:30",
		"v00094", "1",
	))

	if res.Applied != 7 || res.Rejected != 0 {
		t.Errorf("Update() = %+v, want 7 applied", res)
	}
	if r.TemperatureOutdoor != 12.5 {
		t.Errorf("TemperatureOutdoor = %v", r.TemperatureOutdoor)
	}
	if r.OperationMode != parameter.OperationManual {
		t.Errorf("OperationMode = %v", r.OperationMode)
	}
	if r.VentilationLevel != parameter.VentilationLevel2 {
		t.Errorf("VentilationLevel = %v", r.VentilationLevel)
	}
	if r.ProductName != "KWL EC 300 W R" {
		t.Errorf("ProductName = %q", r.ProductName)
	}
	if r.SystemDate != (parameter.Date{Year: 2025, Month: 12, Day: 24}) {
		t.Errorf("SystemDate = %v", r.SystemDate)
	}
	if r.SystemTime != parameter.NewTimeOfDay(14, 30, 0) {
		t.Errorf("SystemTime = %v", r.SystemTime)
	}
	if !r.BoosterActive {
		t.Error("BoosterActive = false")
	}
}

func TestUpdate_UnparseableKeepsStaleValue(t *testing.T) {
	r := New()
	r.Update(frameOf("v00104", "9.5", "v00102", "3", "v00113", "640"))

	res := r.Update(frameOf("v00104", "n/a", "v00102", "7", "v00113", "12.5"))

	if res.Applied != 0 || res.Rejected != 3 {
		t.Errorf("Update() = %+v, want 3 rejected", res)
	}
	if r.TemperatureOutdoor != 9.5 {
		t.Errorf("TemperatureOutdoor = %v, want stale 9.5", r.TemperatureOutdoor)
	}
	if r.VentilationLevel != parameter.VentilationLevel3 {
		t.Errorf("VentilationLevel = %v, want stale Level3", r.VentilationLevel)
	}
	if r.CO2Level != 640 {
		t.Errorf("CO2Level = %v, want stale 640", r.CO2Level)
	}
}

func TestUpdate_UnavailableFloatIsZero(t *testing.T) {
	r := New()
	r.Update(frameOf("v00104", "4.5"))
	r.Update(frameOf("v00104", "-"))
	if r.TemperatureOutdoor != 0 {
		t.Errorf("TemperatureOutdoor = %v, want 0", r.TemperatureOutdoor)
	}
}

func TestUpdate_IgnoresUnknownAndAbsentLabels(t *testing.T) {
	r := New()
	r.Update(frameOf("v00105", "20.0"))

	before := *r
	res := r.Update(frameOf("v99999", "1", "v00008x", "2", "", "3"))

	if res != (Result{}) {
		t.Errorf("Update() = %+v, want nothing applied", res)
	}
	if *r != before {
		t.Error("unknown labels changed the record")
	}
	if r.TemperatureSupply != 20.0 {
		t.Errorf("TemperatureSupply = %v, absent label should not reset it", r.TemperatureSupply)
	}
}

func TestUpdate_EmptyAndNilFrame(t *testing.T) {
	r := New()
	if res := r.Update(nil); res != (Result{}) {
		t.Errorf("Update(nil) = %+v", res)
	}
	if res := r.Update(frame.New("")); res != (Result{}) {
		t.Errorf("Update(empty) = %+v", res)
	}
	if *r != (Record{}) {
		t.Error("empty update changed the record")
	}
}

// ─── Accessors ─────────────────────────────────────────────────────

func TestGet(t *testing.T) {
	r := New()
	r.Update(frameOf("v00104", "12.5", "v00101", "1"))

	v, ok := r.Get("TemperatureOutdoor")
	if !ok || v != parameter.Float64Value(12.5) {
		t.Errorf("Get(TemperatureOutdoor) = %v, %v", v, ok)
	}
	v, ok = r.GetByLabel("v00101")
	if !ok || v.Interface() != parameter.OperationManual {
		t.Errorf("GetByLabel(v00101) = %v, %v", v, ok)
	}
	if _, ok := r.Get("v00104"); ok {
		t.Error("Get accepted a label")
	}
	if _, ok := r.GetByLabel("TemperatureOutdoor"); ok {
		t.Error("GetByLabel accepted a name")
	}
}

func TestSet_KindMismatch(t *testing.T) {
	r := New()
	if r.Set("TemperatureOutdoor", parameter.Int32Value(3)) {
		t.Error("Set accepted an int32 for a float64 field")
	}
	if r.Set("Nope", parameter.Int32Value(3)) {
		t.Error("Set accepted an unknown name")
	}
}

func TestMetrics(t *testing.T) {
	r := New()
	r.Update(frameOf("v00104", "3.5", "v00102", "2", "v00094", "1", "v00000", "name"))

	m := r.Metrics()
	if m["TemperatureOutdoor"] != 3.5 {
		t.Errorf("TemperatureOutdoor = %v", m["TemperatureOutdoor"])
	}
	if m["VentilationLevel"] != 2.0 {
		t.Errorf("VentilationLevel = %v", m["VentilationLevel"])
	}
	if m["BoosterActive"] != 1.0 {
		t.Errorf("BoosterActive = %v", m["BoosterActive"])
	}
	if _, ok := m["ProductName"]; ok {
		t.Error("string field exported as metric")
	}
	if _, ok := m["SystemDate"]; ok {
		t.Error("date field exported as metric")
	}
}

func TestClone_Independent(t *testing.T) {
	r := New()
	r.Update(frameOf("v00104", "1.5"))
	c := r.Clone()
	c.Update(frameOf("v00104", "2.5"))

	if r.TemperatureOutdoor != 1.5 {
		t.Errorf("original changed to %v", r.TemperatureOutdoor)
	}
	if c.TemperatureOutdoor != 2.5 {
		t.Errorf("clone = %v", c.TemperatureOutdoor)
	}
}
