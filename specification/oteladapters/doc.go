// Package oteladapters provides OpenTelemetry implementations of the observability interfaces
// declared in package specification, for the catalog store and the journal persistence manager.
package oteladapters
