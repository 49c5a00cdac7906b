// Package parameter is the static catalogue of the ventilation unit's
// parameters.
//
// Every parameter has a canonical name (the Go identifier used throughout
// the gateway, e.g. "TemperatureOutdoor"), a protocol label (the identifier
// the device uses on the wire, "v" followed by five digits, e.g. "v00104")
// and a Kind that fixes how its raw text is interpreted.
//
// The catalogue is a bijection: no two descriptors share a name or a label.
// It is built once at package initialisation and never mutated, so every
// function in this package is safe for concurrent use.
//
// Raw device text is turned into typed values with Coerce. Coerce never
// fails loudly: it reports whether the text parsed, and callers keep their
// previous value when it did not.
package parameter
