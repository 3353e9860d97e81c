package config

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
)

// PostgresSQLX creates a configured *sqlx.DB for the test database and closes it on cleanup.
func PostgresSQLX(t testing.TB) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("postgres", PostgresDSN(t))
	if err != nil {
		t.Fatalf("failed to open database connection: %v", err)
	}

	configureAndPing(t, db.DB)

	return db
}
