// Package testdoubles provides spies for the observability interfaces of package specification,
// plus a slog.Handler spy, so tests can assert on logs, metrics and spans without a backend.
package testdoubles
