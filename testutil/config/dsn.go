package config

import (
	"os"
	"testing"
)

const (
	envPostgresDSN = "SOLID_TEST_POSTGRES_DSN"
	envRedisAddr   = "SOLID_TEST_REDIS_ADDR"
)

// PostgresDSN returns the DSN for the test database, skipping the test if none is configured.
func PostgresDSN(t testing.TB) string {
	t.Helper()

	dsn := os.Getenv(envPostgresDSN)
	if dsn == "" {
		t.Skipf("%s not set, skipping postgres test", envPostgresDSN)
	}

	return dsn
}

// RedisAddr returns the address of the test Redis, skipping the test if none is configured.
func RedisAddr(t testing.TB) string {
	t.Helper()

	addr := os.Getenv(envRedisAddr)
	if addr == "" {
		t.Skipf("%s not set, skipping redis test", envRedisAddr)
	}

	return addr
}

// SQLiteMemoryDSN returns a DSN for a private in-memory SQLite database.
func SQLiteMemoryDSN() string {
	return ":memory:"
}
