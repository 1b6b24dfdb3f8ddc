// Package logging assembles structured slog loggers and formatting helpers used
// across gitfortune.
//
// It owns the configurable console/JSON handlers and centralizes level and
// output plumbing. Standard output is reserved for the chosen fortune, so
// loggers write to standard error unless told otherwise. The package also
// provides a no-op logger for tests and wiring code that cannot fail.
package logging
