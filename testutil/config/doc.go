// Package config provides database and Redis configuration for integration tests.
//
// SQLite runs in-process and is always available. PostgreSQL and Redis are only used when
// SOLID_TEST_POSTGRES_DSN or SOLID_TEST_REDIS_ADDR are set; otherwise the factories skip the test.
package config
