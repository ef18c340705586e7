package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/thunderdome-fixtures/internal/ciutil"
)

// LoggerConfig holds the settings needed to build a logger.
type LoggerConfig struct {
	Level string
	// Format is "json" or "text". Empty means json.
	Format string
}

// ParseLevel converts a configured level name into a slog.Level.
// Matching is case-insensitive.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log level %q", level)
}

// New builds a logger writing to out. An invalid level falls back to info and
// is reported through the returned logger itself.
func New(cfg LoggerConfig, out io.Writer) *slog.Logger {
	level, levelErr := ParseLevel(cfg.Level)

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch {
	case ciutil.IsCI():
		handler = NewCIHandler(out, opts)
	case strings.EqualFold(cfg.Format, "text"):
		handler = slog.NewTextHandler(out, opts)
	default:
		handler = slog.NewJSONHandler(out, opts)
	}

	l := slog.New(handler)
	if levelErr != nil {
		l.Warn("invalid log level configured, using default level",
			slog.String("configured_level", cfg.Level),
			slog.String("default_level", "info"))
	}
	return l
}

// Setup builds the process logger and installs it as the slog default.
// Logs go to stderr so stdout stays free for command output.
func Setup(cfg LoggerConfig) (*slog.Logger, error) {
	if cfg.Format != "" && !strings.EqualFold(cfg.Format, "json") && !strings.EqualFold(cfg.Format, "text") {
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}

	l := New(cfg, os.Stderr)
	slog.SetDefault(l)
	return l, nil
}
