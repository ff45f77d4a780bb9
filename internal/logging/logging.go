// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging configures the process-wide slog logger.
package logging

import (
	"log/slog"
	"os"

	"github.com/pdiddy/corpus-converter/pkg/types"
)

// Init installs the default slog logger with the configured level and
// handler format (json or text).
func Init(cfg types.LoggingConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// WithFile returns a logger pre-tagged with a ledger record's identity, so
// every message about a file carries its id and source path.
func WithFile(id int64, sourcePath string) *slog.Logger {
	return slog.Default().With("file_id", id, "source_path", sourcePath)
}
