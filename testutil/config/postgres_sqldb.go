package config

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/lib/pq" // postgres driver
)

// PostgresSQLDB creates a configured *sql.DB for the test database and closes it on cleanup.
func PostgresSQLDB(t testing.TB) *sql.DB {
	t.Helper()

	db, err := sql.Open("postgres", PostgresDSN(t))
	if err != nil {
		t.Fatalf("failed to open database connection: %v", err)
	}

	configureAndPing(t, db)

	return db
}

func configureAndPing(t testing.TB, db *sql.DB) {
	t.Helper()

	const defaultMaxOpenConnections = 10
	const defaultMaxIdleConnections = 2
	const defaultMaxConnLifetime = time.Hour

	db.SetMaxOpenConns(defaultMaxOpenConnections)
	db.SetMaxIdleConns(defaultMaxIdleConnections)
	db.SetConnMaxLifetime(defaultMaxConnLifetime)

	t.Cleanup(func() { _ = db.Close() })

	if pingErr := db.PingContext(context.Background()); pingErr != nil {
		t.Fatalf("failed to ping database: %v", pingErr)
	}
}
