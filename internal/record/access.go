package record

import (
	"github.com/nerrad567/easycontrols-gateway/internal/parameter"
)

// Get returns the field with the given canonical name.
func (r *Record) Get(name string) (parameter.Value, bool) {
	acc, ok := accessors[name]
	if !ok {
		return parameter.Value{}, false
	}
	return acc.get(r), true
}

// GetByLabel returns the field with the given protocol label.
func (r *Record) GetByLabel(label string) (parameter.Value, bool) {
	name, ok := parameter.NameForLabel(label)
	if !ok {
		return parameter.Value{}, false
	}
	return r.Get(name)
}

// Set stores v in the named field. It reports false, leaving r unchanged,
// when the name is unknown or v has a different kind.
func (r *Record) Set(name string, v parameter.Value) bool {
	acc, ok := accessors[name]
	if !ok || acc.kind != v.Kind() {
		return false
	}
	acc.set(r, v)
	return true
}

// Values returns every field keyed by canonical name.
func (r *Record) Values() map[string]parameter.Value {
	out := make(map[string]parameter.Value, len(accessors))
	for name, acc := range accessors {
		out[name] = acc.get(r)
	}
	return out
}

// Metrics returns the fields with a numeric representation, suitable for a
// time-series point. Bools become 0/1 and enumerations their ordinal.
func (r *Record) Metrics() map[string]interface{} {
	out := make(map[string]interface{}, len(accessors))
	for name, acc := range accessors {
		if !acc.kind.IsNumeric() {
			continue
		}
		if f, ok := acc.get(r).Numeric(); ok {
			out[name] = f
		}
	}
	return out
}
