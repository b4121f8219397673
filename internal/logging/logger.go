// Package logging builds the structured logger shared by the repository and the CLI.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options selects the level, destination and format of log records.
type Options struct {
	Level  string // debug, info, warn or error; empty means info
	File   string // append to this file; empty or "-" means stderr
	Format string // text or json
}

func level(option string) (slog.Leveler, bool) {
	switch strings.ToLower(option) {
	case "":
		return nil, true
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return nil, false
	}
}

func format(option string) (string, bool) {
	switch strings.ToLower(option) {
	case "", "text":
		return "text", true
	case "json":
		return "json", true
	default:
		return "", false
	}
}

func nopClose() error { return nil }

// New returns a logger for options and a function releasing its log file.
// Unusable options fall back to their defaults and the returned logger warns
// about them. Level and format are checked before the log file is opened, so
// the file is opened at most once.
func New(options *Options, stderr io.Writer) (*slog.Logger, func() error) {
	level, ok := level(options.Level)
	if !ok {
		bad := options.Level
		options.Level = ""
		logger, closeFn := New(options, stderr)
		logger.Warn("could not parse logger level", "level", bad)
		return logger, closeFn
	}
	opts := slog.HandlerOptions{Level: level}

	handlerFormat, ok := format(options.Format)
	if !ok {
		bad := options.Format
		options.Format = "text"
		logger, closeFn := New(options, stderr)
		logger.Warn("could not parse logger format", "format", bad)
		return logger, closeFn
	}

	var output io.Writer
	closeFn := nopClose
	switch options.File {
	case "", "-":
		output = stderr
	case os.DevNull:
		return slog.New(slog.DiscardHandler), nopClose
	default:
		file, err := os.OpenFile(options.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			options.File = ""
			logger, closeFn := New(options, stderr)
			logger.Warn("could not open logger file", "err", err)
			return logger, closeFn
		}
		output, closeFn = file, file.Close
	}

	if handlerFormat == "json" {
		return slog.New(slog.NewJSONHandler(output, &opts)), closeFn
	}
	return slog.New(slog.NewTextHandler(output, &opts)), closeFn
}
