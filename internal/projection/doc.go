// Package projection derives fixed subsets of the canonical record for
// consumers that only need one aspect of the unit: the control panel, the
// booster page, the fault list and so on.
//
// Every view is a plain struct whose field names and types match the record
// fields it copies, and whose Refresh method copies them. Views hold no
// reference to the record and are safe to marshal or hand to another
// goroutine once refreshed.
//
// Views are addressed by name through Build and Names:
//
//	v, ok := projection.Build("booster", store.Load())
package projection
