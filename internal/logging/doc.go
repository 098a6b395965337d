// Package logging builds the slog loggers used across Scribe.
//
// It provides a human-oriented console handler for interactive use, a JSON
// handler for machine consumption, typed attribute helpers, and component
// loggers so every subsystem tags its records consistently.
package logging
