package record

import (
	"github.com/nerrad567/easycontrols-gateway/internal/frame"
	"github.com/nerrad567/easycontrols-gateway/internal/parameter"
)

// Result summarises one Update.
type Result struct {
	Applied  int // Frame values that parsed and were stored
	Rejected int // Frame values present for a known label that did not parse
}

// Update merges a frame into r.
//
// For every registered parameter whose label is present in f, the raw text
// is coerced to the parameter's kind and stored. Text that does not parse
// leaves the field untouched, so the last good value survives a bad reading.
// Labels in f that are not registered are ignored. Fields whose label is
// absent from f are not touched.
func (r *Record) Update(f *frame.Frame) Result {
	var res Result
	if f == nil || f.Len() == 0 {
		return res
	}

	for _, d := range parameter.All() {
		raw, ok := f.Get(d.Label)
		if !ok {
			continue
		}
		acc, ok := accessors[d.Name]
		if !ok {
			continue
		}
		v, ok := parameter.Coerce(d, raw)
		if !ok {
			res.Rejected++
			continue
		}
		acc.set(r, v)
		res.Applied++
	}
	return res
}
