// Package logging builds the slog loggers used by the batch driver and the
// CLI.
//
// Three formats are supported:
//
//   - text: human-readable key=value lines
//   - json: one JSON object per line
//   - auto: text when the output is a terminal, json otherwise
//
// Usage:
//
//	logger, err := logging.New(logging.Config{Level: "debug", Format: "auto"})
//	if err != nil {
//		return err
//	}
//	logger.WithRun(runID).Info("run started", "graph", path)
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

var (
	// ErrInvalidLevel indicates an unknown level name.
	ErrInvalidLevel = errors.New("logging: invalid level")

	// ErrInvalidFormat indicates an unknown format name.
	ErrInvalidFormat = errors.New("logging: invalid format")
)

// Format names accepted by Config.Format.
const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatJSON = "json"
)

// Config selects level, format and destination.
type Config struct {
	// Level is debug, info, warn or error. Empty means info.
	Level string
	// Format is auto, text or json. Empty means auto.
	Format string
	// Output defaults to os.Stderr.
	Output io.Writer
}

// Logger wraps slog.Logger with hcpath field helpers.
type Logger struct {
	*slog.Logger
}

// New creates a Logger from cfg.
func New(cfg Config) (*Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch format := strings.ToLower(cfg.Format); format {
	case FormatText:
		handler = slog.NewTextHandler(out, opts)
	case FormatJSON:
		handler = slog.NewJSONHandler(out, opts)
	case FormatAuto, "":
		if isTerminal(out) {
			handler = slog.NewTextHandler(out, opts)
		} else {
			handler = slog.NewJSONHandler(out, opts)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, cfg.Format)
	}
	return &Logger{Logger: slog.New(handler)}, nil
}

// NoopLogger discards all log output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// WithRun tags every record with the batch run id.
func (l *Logger) WithRun(id string) *Logger {
	return &Logger{Logger: l.Logger.With("run", id)}
}

// WithGraph tags every record with the graph path.
func (l *Logger) WithGraph(path string) *Logger {
	return &Logger{Logger: l.Logger.With("graph", path)}
}

// WithHops tags every record with the hop bound.
func (l *Logger) WithHops(k int) *Logger {
	return &Logger{Logger: l.Logger.With("k", k)}
}
