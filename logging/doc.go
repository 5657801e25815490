// Package logging provides structured logging using Go's standard library log/slog.
// It outputs logs in JSON format and tags each subsystem of the library with
// its own child logger.
package logging
