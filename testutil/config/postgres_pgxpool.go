package config

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresPGXPool creates a pgxpool.Pool for the test database and closes it on cleanup.
func PostgresPGXPool(t testing.TB) *pgxpool.Pool {
	t.Helper()

	const defaultMaxConnections = int32(10)
	const defaultMinConnections = int32(1)
	const defaultMaxConnIdleTime = time.Minute
	const defaultConnectTimeout = time.Second * 5

	dbConfig, err := pgxpool.ParseConfig(PostgresDSN(t))
	if err != nil {
		t.Fatalf("failed to create a pgxpool config: %v", err)
	}

	dbConfig.MaxConns = defaultMaxConnections
	dbConfig.MinConns = defaultMinConnections
	dbConfig.MaxConnIdleTime = defaultMaxConnIdleTime
	dbConfig.ConnConfig.ConnectTimeout = defaultConnectTimeout

	pool, err := pgxpool.NewWithConfig(context.Background(), dbConfig)
	if err != nil {
		t.Fatalf("failed to create a pgxpool: %v", err)
	}

	t.Cleanup(pool.Close)

	return pool
}
