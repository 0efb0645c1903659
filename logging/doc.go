// Package logging provides structured logging using Go's standard library
// log/slog, plus the mapping from diagnostics to log records used by the CLI
// and the Fx module. Output is JSON or plain text depending on configuration.
package logging
