// Package database provides SQLite connectivity for the gateway's poll history.
//
// This package manages:
//   - Database connection with WAL mode for concurrent access
//   - Schema migrations loaded from an fs.FS (embedded in the binary)
//   - Connection pooling and lifecycle management
//
// The database only ever receives history rows. It is never read back into
// the live record, so a restart always begins from a fresh record.
//
// Usage:
//
//	db, err := database.Open(cfg.Database)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//
//	if _, err := db.Migrate(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Migration files are named YYYYMMDD_HHMMSS_description.{up,down}.sql and
// are additive: new columns must be NULLABLE or carry a DEFAULT.
package database
