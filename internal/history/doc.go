// Package history keeps a local audit trail of poll cycles in SQLite.
//
// Each entry stores the outcome of one poll and, on success, a JSON snapshot
// of the canonical record. Entries are written and queried only; the gateway
// never restores the live record from history.
package history
