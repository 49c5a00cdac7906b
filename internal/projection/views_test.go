package projection

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/nerrad567/easycontrols-gateway/internal/frame"
	"github.com/nerrad567/easycontrols-gateway/internal/parameter"
	"github.com/nerrad567/easycontrols-gateway/internal/record"
)

// populated returns a record in which every field holds a non-zero value
// unique enough to catch a view copying the wrong field.
func populated(t *testing.T) *record.Record {
	t.Helper()
	r := record.New()
	for i, d := range parameter.All() {
		n := int32(i%3 + 1)
		var v parameter.Value
		switch {
		case d.Kind == parameter.KindInt32:
			v = parameter.Int32Value(int32(1000 + i))
		case d.Kind == parameter.KindFloat64:
			v = parameter.Float64Value(float64(i) + 0.5)
		case d.Kind == parameter.KindString:
			v = parameter.StringValue(d.Name)
		case d.Kind == parameter.KindDate:
			v = parameter.DateValue(parameter.Date{Year: 2000 + i, Month: 1, Day: 1})
		case d.Kind == parameter.KindTimeOfDay:
			v = parameter.TimeOfDayValue(parameter.TimeOfDay(i))
		case d.Kind == parameter.KindBool:
			v = parameter.BoolValue(true)
		default:
			if !parameter.IsMember(d.Kind, n) {
				n = 1
			}
			v = parameter.EnumValue(d.Kind, n)
		}
		if !r.Set(d.Name, v) {
			t.Fatalf("Set(%s) failed", d.Name)
		}
	}
	return r
}

// Every view field must be a registered name, typed like the record field,
// and hold exactly the record's value after a refresh.
func TestViews_SubsetOfRecord(t *testing.T) {
	r := populated(t)
	rv := reflect.ValueOf(*r)

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			v, ok := Build(name, r)
			if !ok {
				t.Fatalf("Build(%q) not found", name)
			}
			vv := reflect.ValueOf(v)
			if vv.Kind() != reflect.Struct {
				t.Fatalf("Build(%q) returned %T, want a struct", name, v)
			}
			if vv.NumField() == 0 {
				t.Fatalf("view %q has no fields", name)
			}
			for i := 0; i < vv.NumField(); i++ {
				field := vv.Type().Field(i)
				if !parameter.IsName(field.Name) {
					t.Errorf("%s.%s is not a registered name", vv.Type().Name(), field.Name)
					continue
				}
				src := rv.FieldByName(field.Name)
				if src.Type() != field.Type {
					t.Errorf("%s.%s has type %s, record has %s", vv.Type().Name(), field.Name, field.Type, src.Type())
					continue
				}
				if !reflect.DeepEqual(vv.Field(i).Interface(), src.Interface()) {
					t.Errorf("%s.%s = %v, record has %v", vv.Type().Name(), field.Name, vv.Field(i), src)
				}
			}
		})
	}
}

func TestViews_Registry(t *testing.T) {
	names := Names()
	if len(names) != 13 {
		t.Errorf("Names() = %d views, want 13", len(names))
	}
	seen := make(map[string]bool)
	for _, n := range names {
		if seen[n] {
			t.Errorf("duplicate view name %q", n)
		}
		seen[n] = true
	}
	if _, ok := Build("nope", record.New()); ok {
		t.Error("Build(nope) succeeded")
	}
	if all := BuildAll(record.New()); len(all) != len(names) {
		t.Errorf("BuildAll() = %d views", len(all))
	}
}

func TestViews_Sizes(t *testing.T) {
	if n := reflect.TypeOf(BoosterView{}).NumField(); n != 9 {
		t.Errorf("BoosterView has %d fields, want 9", n)
	}
	if n := reflect.TypeOf(DisplayView{}).NumField(); n < 80 {
		t.Errorf("DisplayView has %d fields, want the full panel set", n)
	}
}

// A view is a snapshot: later record changes do not reach it until the next
// Refresh.
func TestViews_Snapshot(t *testing.T) {
	r := record.New()
	r.Update(frameOf("v00104", "1.5"))

	var v TemperatureView
	v.Refresh(r)
	r.Update(frameOf("v00104", "8.0"))

	if v.TemperatureOutdoor != 1.5 {
		t.Errorf("TemperatureOutdoor = %v, want snapshot 1.5", v.TemperatureOutdoor)
	}
	v.Refresh(r)
	if v.TemperatureOutdoor != 8.0 {
		t.Errorf("TemperatureOutdoor = %v after refresh, want 8.0", v.TemperatureOutdoor)
	}
}

// ─── End to end ────────────────────────────────────────────────────

func frameOf(pairs ...string) *frame.Frame {
	f := frame.New("en")
	for i := 0; i+1 < len(pairs); i += 2 {
		f.Set(pairs[i], pairs[i+1])
	}
	return f
}

func TestEndToEnd_PageToViews(t *testing.T) {
	doc := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<PARAMETER>
  <LANG>en</LANG>
  <ID>v00104</ID><VA>12.5</VA>
  <ID>v00101</ID><VA>1</VA>
  <ID>v00102</ID><VA>2</VA>
  <ID>v00094</ID><VA>1</VA>
  <ID>v00093</ID><VA>17</VA>
  <ID>v99999</ID><VA>ignored</VA>
</PARAMETER>`)

	f, err := frame.Parse(doc)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	store := record.NewStore()
	r, res := store.Apply(f)
	if res.Applied != 5 {
		t.Errorf("Apply() = %+v, want 5 applied", res)
	}

	var op OperationView
	op.Refresh(r)
	if op.OperationMode != parameter.OperationManual {
		t.Errorf("operation OperationMode = %v, want Manual", op.OperationMode)
	}
	if op.VentilationLevel != parameter.VentilationLevel2 {
		t.Errorf("operation VentilationLevel = %v, want Level2", op.VentilationLevel)
	}
	if !op.BoosterActive {
		t.Error("operation BoosterActive = false, want true")
	}

	var booster BoosterView
	booster.Refresh(r)
	if booster.OperationMode != parameter.OperationManual {
		t.Errorf("OperationMode = %v, want Manual", booster.OperationMode)
	}
	if booster.VentilationLevel != parameter.VentilationLevel2 {
		t.Errorf("VentilationLevel = %v, want Level2", booster.VentilationLevel)
	}
	if !booster.BoosterActive || booster.BoosterRemaining != 17 {
		t.Errorf("booster = %+v", booster)
	}

	var display DisplayView
	display.Refresh(r)
	if display.TemperatureOutdoor != 12.5 {
		t.Errorf("display TemperatureOutdoor = %v, want 12.5", display.TemperatureOutdoor)
	}

	data, err := json.Marshal(booster)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if decoded["OperationMode"] != "Manual" || decoded["VentilationLevel"] != "Level2" {
		t.Errorf("JSON = %s", data)
	}
}
