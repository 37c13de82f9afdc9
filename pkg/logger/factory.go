package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured records for log aggregation.
	FormatJSON Format = "json"
	// FormatText outputs human-readable records for terminal use.
	FormatText Format = "text"
)

// Option configures logger creation.
type Option func(*config)

// WithLevel sets the minimum record level.
func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithLevelName sets the level from its textual name ("debug", "info",
// "warn", "error"), as read from flags or the environment. Unknown names
// panic so misconfiguration prevents startup instead of silently logging
// at the wrong level.
func WithLevelName(name string) Option {
	return func(c *config) {
		switch strings.ToLower(name) {
		case "debug":
			c.level = slog.LevelDebug
		case "info":
			c.level = slog.LevelInfo
		case "warn", "warning":
			c.level = slog.LevelWarn
		case "error":
			c.level = slog.LevelError
		default:
			panic(fmt.Errorf("unknown log level %q", name))
		}
	}
}

// WithFormat sets the output format, panicking for unknown formats.
func WithFormat(f Format) Option {
	return func(c *config) {
		switch f {
		case FormatJSON, FormatText:
			c.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

// WithOutput sets a custom output destination, ignoring nil writers.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		c.attrs = append(c.attrs, attrs...)
	}
}

type config struct {
	level  slog.Level
	format Format
	output io.Writer
	attrs  []slog.Attr
}

// defaultConfig suits an interactive CLI: text records at info level on
// stderr, keeping stdout free for command output and TUI rendering.
func defaultConfig() *config {
	return &config{
		level:  slog.LevelInfo,
		format: FormatText,
		output: os.Stderr,
	}
}

// New creates a logger configured by the given options.
func New(opts ...Option) *slog.Logger {
	c := defaultConfig()
	for _, opt := range opts {
		opt(c)
	}

	handlerOpts := &slog.HandlerOptions{Level: c.level}
	var handler slog.Handler
	switch c.format {
	case FormatJSON:
		handler = slog.NewJSONHandler(c.output, handlerOpts)
	default:
		handler = slog.NewTextHandler(c.output, handlerOpts)
	}
	if len(c.attrs) > 0 {
		handler = handler.WithAttrs(c.attrs)
	}
	return slog.New(handler)
}

// SetAsDefault installs the logger as the process default.
func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}
