package database

import (
	"cmp"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"time"
)

// MigrationsFS holds the migration files. The migrations package assigns
// its embedded files here in init; tests substitute an fstest.MapFS.
var MigrationsFS fs.FS

// MigrationsDir is the directory within MigrationsFS holding the files.
var MigrationsDir = "migrations"

// Migration errors.
var (
	// ErrNoDownSQL is returned when rolling back a one-way migration.
	ErrNoDownSQL = errors.New("database: migration has no down SQL")

	// ErrUnknownMigration is returned when the schema records a version
	// that is no longer shipped with the binary.
	ErrUnknownMigration = errors.New("database: applied migration not found")
)

// Migration is one schema step, loaded from a pair of files named
//
//	YYYYMMDD_HHMMSS_<name>.up.sql
//	YYYYMMDD_HHMMSS_<name>.down.sql   (optional)
type Migration struct {
	Version string
	Name    string
	UpSQL   string
	DownSQL string
}

// MigrationState reports whether a shipped migration has been applied.
type MigrationState struct {
	Migration
	AppliedAt time.Time // zero while pending
}

// Applied reports whether the migration has run.
func (s MigrationState) Applied() bool { return !s.AppliedAt.IsZero() }

// Migrate applies every pending migration in version order.
//
// Each migration runs in its own transaction, so a failure leaves earlier
// steps committed and the failing one absent from schema_migrations.
// Returns the number of migrations applied.
func (db *DB) Migrate(ctx context.Context) (int, error) {
	states, err := db.MigrationStatus(ctx)
	if err != nil {
		return 0, err
	}

	n := 0
	for _, s := range states {
		if s.Applied() {
			continue
		}
		err := db.inTx(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, s.UpSQL); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx,
				"INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)",
				s.Version, time.Now().UTC().Format(time.RFC3339))
			return err
		})
		if err != nil {
			return n, fmt.Errorf("applying migration %s (%s): %w", s.Version, s.Name, err)
		}
		n++
	}
	return n, nil
}

// MigrateDown rolls back the most recently applied migration.
//
// Returns the migration that was rolled back, or ok=false when nothing
// had been applied.
func (db *DB) MigrateDown(ctx context.Context) (m Migration, ok bool, err error) {
	if err := db.ensureMigrationsTable(ctx); err != nil {
		return Migration{}, false, err
	}

	var version string
	err = db.QueryRowContext(ctx,
		"SELECT version FROM schema_migrations ORDER BY version DESC LIMIT 1",
	).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return Migration{}, false, nil
	}
	if err != nil {
		return Migration{}, false, fmt.Errorf("reading latest migration: %w", err)
	}

	shipped, err := loadMigrations()
	if err != nil {
		return Migration{}, false, err
	}
	i := slices.IndexFunc(shipped, func(s Migration) bool { return s.Version == version })
	if i < 0 {
		return Migration{}, false, fmt.Errorf("%w: %s", ErrUnknownMigration, version)
	}
	m = shipped[i]
	if m.DownSQL == "" {
		return Migration{}, false, fmt.Errorf("%w: %s (%s)", ErrNoDownSQL, m.Version, m.Name)
	}

	err = db.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, m.DownSQL); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, "DELETE FROM schema_migrations WHERE version = ?", m.Version)
		return err
	})
	if err != nil {
		return Migration{}, false, fmt.Errorf("rolling back %s (%s): %w", m.Version, m.Name, err)
	}
	return m, true, nil
}

// MigrationStatus lists every shipped migration, oldest first, with the
// time it was applied.
func (db *DB) MigrationStatus(ctx context.Context) ([]MigrationState, error) {
	if err := db.ensureMigrationsTable(ctx); err != nil {
		return nil, err
	}

	shipped, err := loadMigrations()
	if err != nil {
		return nil, err
	}
	applied, err := db.appliedVersions(ctx)
	if err != nil {
		return nil, err
	}

	states := make([]MigrationState, len(shipped))
	for i, m := range shipped {
		states[i] = MigrationState{Migration: m, AppliedAt: applied[m.Version]}
	}
	return states, nil
}

func (db *DB) ensureMigrationsTable(ctx context.Context) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    TEXT PRIMARY KEY,
			applied_at TEXT NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("creating migrations table: %w", err)
	}
	return nil
}

func (db *DB) appliedVersions(ctx context.Context) (map[string]time.Time, error) {
	rows, err := db.DB.QueryContext(ctx, "SELECT version, applied_at FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("querying migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]time.Time)
	for rows.Next() {
		var version, at string
		if err := rows.Scan(&version, &at); err != nil {
			return nil, fmt.Errorf("scanning migration row: %w", err)
		}
		t, err := time.Parse(time.RFC3339, at)
		if err != nil {
			return nil, fmt.Errorf("migration %s: bad applied_at %q: %w", version, at, err)
		}
		applied[version] = t
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating migrations: %w", err)
	}
	return applied, nil
}

// inTx runs fn in a transaction, committing only when fn succeeds.
func (db *DB) inTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// loadMigrations reads MigrationsFS and returns its migrations sorted by
// version. A missing source or directory yields no migrations.
func loadMigrations() ([]Migration, error) {
	if MigrationsFS == nil {
		return nil, nil
	}
	entries, err := fs.ReadDir(MigrationsFS, MigrationsDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading migrations: %w", err)
	}

	byVersion := make(map[string]*Migration)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		f, ok := parseMigrationFile(e.Name())
		if !ok {
			continue
		}
		data, err := fs.ReadFile(MigrationsFS, path.Join(MigrationsDir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", e.Name(), err)
		}

		m := byVersion[f.version]
		if m == nil {
			m = &Migration{Version: f.version, Name: f.name}
			byVersion[f.version] = m
		}
		if f.up {
			m.UpSQL = string(data)
		} else {
			m.DownSQL = string(data)
		}
	}

	out := make([]Migration, 0, len(byVersion))
	for _, m := range byVersion {
		if m.UpSQL == "" {
			return nil, fmt.Errorf("migration %s (%s) has a down file but no up file", m.Version, m.Name)
		}
		out = append(out, *m)
	}
	slices.SortFunc(out, func(a, b Migration) int { return cmp.Compare(a.Version, b.Version) })
	return out, nil
}

type migrationFile struct {
	version string
	name    string
	up      bool
}

// parseMigrationFile splits "20261019_090000_poll_history.up.sql" into its
// version, name and direction.
func parseMigrationFile(filename string) (migrationFile, bool) {
	base, ok := strings.CutSuffix(filename, ".sql")
	if !ok {
		return migrationFile{}, false
	}

	var f migrationFile
	if b, ok := strings.CutSuffix(base, ".up"); ok {
		base, f.up = b, true
	} else if b, ok := strings.CutSuffix(base, ".down"); ok {
		base = b
	} else {
		return migrationFile{}, false
	}

	date, rest, ok := strings.Cut(base, "_")
	if !ok || len(date) != len("20060102") {
		return migrationFile{}, false
	}
	clock, name, _ := strings.Cut(rest, "_")
	if len(clock) != len("150405") {
		return migrationFile{}, false
	}
	f.version = date + "_" + clock
	f.name = name
	if f.name == "" {
		f.name = f.version
	}
	return f, true
}
