package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// NewDB opens the SQLite database at the given path. Pass ":memory:" for an
// in-memory database (used by tests). The caller owns the handle and must
// close it on shutdown; migrations are run separately via migrations.Run.
func NewDB(path string) (*sql.DB, error) {
	dsn := path
	if path != ":memory:" {
		// modernc.org/sqlite takes pragmas in _pragma=name(value) form.
		dsn = path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// A single connection keeps writes serialized and, for ":memory:",
	// keeps every statement on the same database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return db, nil
}
