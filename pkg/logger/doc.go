// Package logger builds configured slog.Logger instances for the inputkit
// CLI: text or JSON records, level selection by value or by name, custom
// outputs and static attributes via functional options.
//
// Defaults favor interactive use - human-readable text at info level on
// stderr - so stdout stays clean for command output and TUI rendering.
package logger
