package projection

import (
	"github.com/nerrad567/easycontrols-gateway/internal/record"
)

// refresher is satisfied by a pointer to any view type.
type refresher[T any] interface {
	*T
	Refresh(*record.Record)
}

func build[T any, P refresher[T]](r *record.Record) any {
	var v T
	P(&v).Refresh(r)
	return v
}

type entry struct {
	name  string
	build func(*record.Record) any
}

// views lists every projection in presentation order.
var views = []entry{
	{"operation", build[OperationView]},
	{"booster", build[BoosterView]},
	{"standby", build[StandbyView]},
	{"vacation", build[VacationView]},
	{"temperature", build[TemperatureView]},
	{"fan", build[FanView]},
	{"filter", build[FilterView]},
	{"air_quality", build[AirQualityView]},
	{"heater", build[HeaterView]},
	{"info", build[InfoView]},
	{"clock", build[ClockView]},
	{"fault", build[FaultView]},
	{"display", build[DisplayView]},
}

// Names returns the view names in presentation order.
func Names() []string {
	out := make([]string, len(views))
	for i, e := range views {
		out[i] = e.name
	}
	return out
}

// Build returns a freshly refreshed view (by value) for name.
func Build(name string, r *record.Record) (any, bool) {
	for _, e := range views {
		if e.name == name {
			return e.build(r), true
		}
	}
	return nil, false
}

// BuildAll refreshes every view from the same record.
func BuildAll(r *record.Record) map[string]any {
	out := make(map[string]any, len(views))
	for _, e := range views {
		out[e.name] = e.build(r)
	}
	return out
}
