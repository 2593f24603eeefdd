// SPDX-License-Identifier: MIT

// Package logging builds the structured logger used by the spinmix CLI.
//
// Output goes to stderr (text or JSON) and, when LogDir is set, also to a
// JSON file named "<service>_<YYYY-MM-DD>.log" in that directory. Every
// entry carries a "service" attribute when Service is non-empty.
//
// Library packages never construct loggers; they receive a *slog.Logger
// through their options (see sweep.WithLogger).
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrBadLevel indicates a level name ParseLevel does not know.
var ErrBadLevel = errors.New("logging: unknown level")

// Level is the minimum severity that is written.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns "debug", "info", "warn", "error" or "unknown".
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel accepts the String forms case-insensitively; "" means info.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("ParseLevel: %q: %w", s, ErrBadLevel)
	}
}

// Config selects the logger's destinations and format.
// The zero value logs Info and above to stderr as text.
type Config struct {
	Level Level
	// JSON switches the stream output from text to JSON.
	JSON bool
	// Quiet drops the stream output; the file (if any) still receives entries.
	Quiet bool
	// Service is attached to every entry as "service".
	Service string
	// LogDir enables the JSON file output.
	LogDir string
	// Output replaces os.Stderr as the stream destination.
	Output io.Writer
}

// Logger is a *slog.Logger that may own a log file.
type Logger struct {
	*slog.Logger
	file *os.File
}

// New builds a Logger from cfg. It fails only when LogDir is set and the
// file cannot be created.
func New(cfg Config) (*Logger, error) {
	opts := &slog.HandlerOptions{Level: cfg.Level.slogLevel()}
	var handlers []slog.Handler

	if !cfg.Quiet {
		w := cfg.Output
		if w == nil {
			w = os.Stderr
		}
		if cfg.JSON {
			handlers = append(handlers, slog.NewJSONHandler(w, opts))
		} else {
			handlers = append(handlers, slog.NewTextHandler(w, opts))
		}
	}

	l := &Logger{}
	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, 0o750); err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		service := cfg.Service
		if service == "" {
			service = "spinmix"
		}
		name := fmt.Sprintf("%s_%s.log", service, time.Now().Format("2006-01-02"))
		f, err := os.OpenFile(filepath.Join(cfg.LogDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		l.file = f
		handlers = append(handlers, slog.NewJSONHandler(f, opts))
	}

	var h slog.Handler
	switch len(handlers) {
	case 0:
		h = slog.DiscardHandler
	case 1:
		h = handlers[0]
	default:
		h = &fanout{handlers: handlers}
	}
	if cfg.Service != "" {
		h = h.WithAttrs([]slog.Attr{slog.String("service", cfg.Service)})
	}
	l.Logger = slog.New(h)
	return l, nil
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// fanout sends each record to every handler that accepts its level.
type fanout struct {
	handlers []slog.Handler
}

func (h *fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, x := range h.handlers {
		if x.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, x := range h.handlers {
		if x.Enabled(ctx, r.Level) {
			errs = append(errs, x.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (h *fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Handler, len(h.handlers))
	for i, x := range h.handlers {
		out[i] = x.WithAttrs(attrs)
	}
	return &fanout{handlers: out}
}

func (h *fanout) WithGroup(name string) slog.Handler {
	out := make([]slog.Handler, len(h.handlers))
	for i, x := range h.handlers {
		out[i] = x.WithGroup(name)
	}
	return &fanout{handlers: out}
}
