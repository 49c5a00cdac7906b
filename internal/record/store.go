package record

import (
	"sync"
	"sync/atomic"

	"github.com/nerrad567/easycontrols-gateway/internal/frame"
)

// Store publishes successive versions of a Record to concurrent readers.
//
// Writers are serialised. Each Apply clones the current record, merges the
// frame into the clone and then swaps it in atomically, so readers never see
// a partially merged record and never block on a writer.
//
// Records returned by Load and Apply are shared and must be treated as
// read-only; use Clone to obtain a mutable copy.
type Store struct {
	mu      sync.Mutex // serialises Apply
	current atomic.Pointer[Record]
	version atomic.Uint64
}

// NewStore returns a store holding a fresh zero-valued record at version 0.
func NewStore() *Store {
	s := &Store{}
	s.current.Store(New())
	return s
}

// Load returns the latest published record.
func (s *Store) Load() *Record {
	return s.current.Load()
}

// Version returns the number of records published since creation.
func (s *Store) Version() uint64 {
	return s.version.Load()
}

// Apply merges f into a copy of the current record and publishes it.
//
// Returns:
//   - *Record: the newly published record
//   - Result: applied/rejected counts from the merge
func (s *Store) Apply(f *frame.Frame) (*Record, Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current.Load().Clone()
	res := next.Update(f)
	s.current.Store(next)
	s.version.Add(1)
	return next, res
}
