package config

import (
	"database/sql"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // sqlite driver
)

// SQLiteSQLDB opens a fresh in-memory SQLite database and closes it on cleanup.
// An in-memory database lives per connection, so the pool is pinned to a single one.
func SQLiteSQLDB(t testing.TB) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", SQLiteMemoryDSN())
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}

	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// SQLiteSQLX wraps SQLiteSQLDB into a *sqlx.DB.
func SQLiteSQLX(t testing.TB) *sqlx.DB {
	t.Helper()

	return sqlx.NewDb(SQLiteSQLDB(t), "sqlite")
}
