// Package logging assembles the structured slog loggers used across werbench.
//
// It centralizes level and output plumbing, and exposes context-aware helpers
// so pipeline code can automatically tag log lines with run IDs and record
// names. The package also provides a no-op logger for tests and wiring code
// that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape.
package logging
