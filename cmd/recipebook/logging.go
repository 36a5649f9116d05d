package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v2"
)

// configLogger builds the logger from the log-level and log-format flags and
// installs it as the slog default.
func configLogger(cctx *cli.Context, out io.Writer) (*slog.Logger, error) {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn", "warning":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		return nil, fmt.Errorf("unexpected log level: %s", cctx.String("log-level"))
	}
	hopts := slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch cctx.String("log-format") {
	case "text":
		handler = slog.NewTextHandler(out, &hopts)
	case "json":
		handler = slog.NewJSONHandler(out, &hopts)
	default:
		return nil, fmt.Errorf("unknown log format: %#v", cctx.String("log-format"))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, nil
}
