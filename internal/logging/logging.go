// Package logging holds the process-wide slog logger shared by the CLI, the
// gRPC service and the Kafka pipeline.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
)

// Environment variables read by FromEnv.
const (
	EnvLevel = "TRANSPOSER_LOG_LEVEL"
	EnvJSON  = "TRANSPOSER_LOG_JSON"
)

type Options struct {
	Level string `koanf:"level"` // debug|info|warn|error
	JSON  bool   `koanf:"json"`

	// Output defaults to stderr.
	Output io.Writer `koanf:"-"`
}

var current atomic.Pointer[slog.Logger]

func init() { current.Store(New(Options{})) }

// New builds a logger without installing it.
func New(opts Options) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	ho := &slog.HandlerOptions{Level: parseLevel(opts.Level)}
	if opts.JSON {
		return slog.New(slog.NewJSONHandler(out, ho))
	}
	return slog.New(slog.NewTextHandler(out, ho))
}

// Configure replaces the process-wide logger.
func Configure(opts Options) { current.Store(New(opts)) }

func L() *slog.Logger { return current.Load() }

// For tags the current logger with the component emitting the record.
func For(component string) *slog.Logger {
	return L().With("component", component)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// FromEnv reads EnvLevel and EnvJSON. An unparsable EnvJSON means text.
func FromEnv() Options {
	opts := Options{Level: os.Getenv(EnvLevel)}
	if b, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(EnvJSON))); err == nil {
		opts.JSON = b
	}
	return opts
}

func InitFromEnv() { Configure(FromEnv()) }
