package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

func newLogger(w io.Writer, level slog.Level, color bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    !color,
	}))
}

// setupLogger logs to stderr, or to logFile when set. The live view owns
// the terminal, so it passes quiet to discard output without a log file.
// The returned func closes the log file.
func setupLogger(quiet bool) (*slog.Logger, func(), error) {
	level, err := parseLevel(logLevel)
	if err != nil {
		return nil, nil, err
	}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return newLogger(f, level, false), func() { f.Close() }, nil
	}
	if quiet {
		return newLogger(io.Discard, level, false), func() {}, nil
	}
	return newLogger(os.Stderr, level, isatty.IsTerminal(os.Stderr.Fd())), func() {}, nil
}
