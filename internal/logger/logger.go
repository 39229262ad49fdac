// Package logger builds the structured logger. The terminal belongs to the
// renderer while a game runs, so logs go to a file.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Log format values
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Attribute keys
const (
	AttrKeyService = "service"
	AttrKeyVersion = "version"
	AttrKeyRunID   = "run_id"
)

// Config represents logger configuration.
type Config struct {
	Level       string // "debug", "info", "warn", "error"
	Format      string // "json", "text"
	ServiceName string
	Version     string
	RunID       string
	AddSource   bool
}

// DefaultConfig returns defaults for a local game session.
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      FormatText,
		ServiceName: "dungeoncrawl",
		Version:     "dev",
		RunID:       NewRunID(),
	}
}

// NewRunID returns a fresh identifier for one play session.
func NewRunID() string {
	return uuid.NewString()
}

// LogLevel converts the string level to a slog.Level.
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
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

// BaseAttributes returns attributes added to every record.
func (c Config) BaseAttributes() []slog.Attr {
	return []slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyRunID, c.RunID),
	}
}

// New builds a logger writing to w.
func New(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler.WithAttrs(cfg.BaseAttributes()))
}

// NewFile builds a logger appending to path. An empty path discards logs.
// The returned close function is never nil.
func NewFile(cfg Config, path string) (*slog.Logger, func() error, error) {
	if path == "" {
		return New(cfg, io.Discard), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return New(cfg, f), f.Close, nil
}
