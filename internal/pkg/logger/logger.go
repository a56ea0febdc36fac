// internal/pkg/logger/logger.go
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ContextKey names a request-scoped value copied onto log records
type ContextKey string

const (
	ContextKeyRequestID ContextKey = "request_id"
	ContextKeyUserID    ContextKey = "user_id"
	ContextKeyTraceID   ContextKey = "trace_id"
	ContextKeyClientIP  ContextKey = "client_ip"
	ContextKeyUserAgent ContextKey = "user_agent"
	ContextKeyMethod    ContextKey = "method"
	ContextKeyPath      ContextKey = "path"
)

// requestKeys is the order in which context values appear on a record
var requestKeys = []ContextKey{
	ContextKeyRequestID,
	ContextKeyTraceID,
	ContextKeyUserID,
	ContextKeyMethod,
	ContextKeyPath,
	ContextKeyClientIP,
	ContextKeyUserAgent,
}

// Logger is the process logger. Close releases any file outputs.
type Logger struct {
	*slog.Logger
	files []*os.File
}

type settings struct {
	out        io.Writer
	sampleRate float64
	files      []string
	service    string
	version    string
	env        string
}

// Option tunes SetupLogger
type Option func(*settings)

// WithSampling keeps only a fraction of debug and info records. Warnings and
// errors are always written. Rates outside (0, 1) disable sampling.
func WithSampling(rate float64) Option {
	return func(s *settings) { s.sampleRate = rate }
}

// WithFiles adds JSON outputs appended to the given paths
func WithFiles(paths ...string) Option {
	return func(s *settings) { s.files = append(s.files, paths...) }
}

// WithService stamps every record with the service identity
func WithService(name, version, env string) Option {
	return func(s *settings) {
		s.service, s.version, s.env = name, version, env
	}
}

// WithOutput replaces stdout as the primary destination
func WithOutput(w io.Writer) Option {
	return func(s *settings) { s.out = w }
}

// SetupLogger builds the process logger and installs it as the slog default.
// format is "json" or "text"; text renders colored lines for local runs.
func SetupLogger(level, format string, opts ...Option) *Logger {
	s := &settings{out: os.Stdout, service: "spoutbreeze-api"}
	for _, opt := range opts {
		opt(s)
	}

	lvl := parseLevel(level)
	l := &Logger{}

	var primary slog.Handler
	if format == "text" {
		primary = NewConsoleHandler(s.out, lvl)
	} else {
		primary = slog.NewJSONHandler(s.out, &slog.HandlerOptions{
			Level:       lvl,
			AddSource:   true,
			ReplaceAttr: renameLevel,
		})
	}

	outputs := []slog.Handler{primary}
	for _, path := range s.files {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "logger: skipping output %s: %v\n", path, err)
			continue
		}
		l.files = append(l.files, f)
		outputs = append(outputs, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: lvl, ReplaceAttr: renameLevel}))
	}

	var h slog.Handler = primary
	if len(outputs) > 1 {
		h = NewMultiHandler(outputs...)
	}
	h = NewContextHandler(h)
	if s.sampleRate > 0 && s.sampleRate < 1 {
		h = NewSamplingHandler(h, s.sampleRate)
	}
	h = NewSanitizationHandler(h)

	var global []slog.Attr
	if s.service != "" {
		global = append(global, slog.String("service", s.service))
	}
	if s.version != "" {
		global = append(global, slog.String("version", s.version))
	}
	if s.env != "" {
		global = append(global, slog.String("env", s.env))
	}
	if len(global) > 0 {
		h = h.WithAttrs(global)
	}

	l.Logger = slog.New(h)
	slog.SetDefault(l.Logger)
	return l
}

// Close flushes and closes file outputs
func (l *Logger) Close() error {
	var errs []error
	for _, f := range l.files {
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	l.files = nil
	return errors.Join(errs...)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// renameLevel uses "severity", which the log aggregator indexes on
func renameLevel(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.LevelKey {
		a.Key = "severity"
	}
	return a
}
