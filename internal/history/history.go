package history

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// ErrCycleIDRequired is returned when an entry has no cycle ID.
var ErrCycleIDRequired = errors.New("history: cycle id is required")

// Entry is one completed poll cycle.
type Entry struct {
	// ID is the auto-incremented primary key.
	ID int64 `json:"id"`

	// CycleID identifies the poll cycle (UUID).
	CycleID string `json:"cycle_id"`

	// SiteID is the configured site identifier.
	SiteID string `json:"site_id"`

	// PolledAt is when the poll started (UTC).
	PolledAt time.Time `json:"polled_at"`

	// Duration is the wall time of fetch, parse and apply.
	Duration time.Duration `json:"duration_ms"`

	// Applied and Rejected count the labels of the merged frame.
	Applied  int `json:"applied"`
	Rejected int `json:"rejected"`

	// Error is set when the poll failed; Snapshot is then empty.
	Error string `json:"error,omitempty"`

	// Snapshot is the record JSON after the poll was applied.
	Snapshot json.RawMessage `json:"snapshot,omitempty"`
}

// MarshalJSON reports Duration in milliseconds.
func (e Entry) MarshalJSON() ([]byte, error) {
	type alias Entry
	return json.Marshal(struct {
		alias
		Duration int64 `json:"duration_ms"`
	}{alias(e), e.Duration.Milliseconds()})
}

// Repository stores and retrieves poll history.
//
// Implementations must be safe for concurrent use and store UTC timestamps.
type Repository interface {
	// Record persists one poll cycle.
	Record(ctx context.Context, entry Entry) error

	// List returns the most recent entries, newest first.
	// limit is clamped to [1, 200]; zero or negative means 50.
	List(ctx context.Context, limit int) ([]Entry, error)

	// Prune deletes entries older than the given age and reports how many.
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
}
