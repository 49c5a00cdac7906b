package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200

	// timeLayout is fixed-width so stored timestamps sort chronologically as text.
	timeLayout = "2006-01-02T15:04:05.000Z"
)

// SQLiteRepository implements Repository on the poll_history table.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a repository over an open, migrated database.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Record inserts one poll cycle.
func (r *SQLiteRepository) Record(ctx context.Context, entry Entry) error {
	if entry.CycleID == "" {
		return ErrCycleIDRequired
	}
	if entry.PolledAt.IsZero() {
		entry.PolledAt = time.Now()
	}

	var errText, snapshot sql.NullString
	if entry.Error != "" {
		errText = sql.NullString{String: entry.Error, Valid: true}
	}
	if len(entry.Snapshot) > 0 {
		snapshot = sql.NullString{String: string(entry.Snapshot), Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO poll_history
		 (cycle_id, site_id, polled_at, duration_ms, applied, rejected, error, snapshot)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.CycleID,
		entry.SiteID,
		entry.PolledAt.UTC().Format(timeLayout),
		entry.Duration.Milliseconds(),
		entry.Applied,
		entry.Rejected,
		errText,
		snapshot,
	)
	if err != nil {
		return fmt.Errorf("inserting poll history: %w", err)
	}
	return nil
}

// List returns recent entries ordered newest first.
func (r *SQLiteRepository) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, cycle_id, site_id, polled_at, duration_ms, applied, rejected, error, snapshot
		 FROM poll_history
		 ORDER BY polled_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying poll history: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0, limit)
	for rows.Next() {
		var (
			e        Entry
			polledAt string
			durMS    int64
			errText  sql.NullString
			snapshot sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.CycleID, &e.SiteID, &polledAt, &durMS,
			&e.Applied, &e.Rejected, &errText, &snapshot); err != nil {
			return nil, fmt.Errorf("scanning poll history: %w", err)
		}

		e.PolledAt, err = time.Parse(timeLayout, polledAt)
		if err != nil {
			return nil, fmt.Errorf("parsing polled_at: %w", err)
		}
		e.Duration = time.Duration(durMS) * time.Millisecond
		e.Error = errText.String
		if snapshot.Valid {
			e.Snapshot = []byte(snapshot.String)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating poll history: %w", err)
	}

	return entries, nil
}

// Prune deletes entries polled before now-olderThan.
func (r *SQLiteRepository) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, fmt.Errorf("olderThan must be positive")
	}

	cutoff := time.Now().UTC().Add(-olderThan).Format(timeLayout)
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM poll_history WHERE polled_at < ?",
		cutoff,
	)
	if err != nil {
		return 0, fmt.Errorf("deleting poll history: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking rows affected: %w", err)
	}
	return n, nil
}
