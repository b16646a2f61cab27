// Package logging sets up the loggers shared by the fjs commands.
package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

const (
	envJSONLog  = "FJS_JSON_LOG"
	envLogLevel = "FJS_LOG_LEVEL"
)

// humanFlags stamps each line with the wall clock only.
const humanFlags = log.Ltime | log.Lmsgprefix

// NewReportLogger returns a logger for a command's result lines, each
// prefixed with [INFO].
func NewReportLogger(w io.Writer) *log.Logger {
	return log.New(w, "[INFO] ", humanFlags)
}

// NewFailureLogger returns a logger for the error a command exits with,
// prefixed with [ERROR].
func NewFailureLogger(w io.Writer) *log.Logger {
	return log.New(w, "[ERROR] ", humanFlags)
}

// Init installs a default slog logger writing to w, tagged with the command
// name. FJS_JSON_LOG=1|true|json selects JSON output and FJS_LOG_LEVEL picks
// the level (debug, info, warn, error).
func Init(w io.Writer, name string) *slog.Logger {
	mode := strings.ToLower(os.Getenv(envJSONLog))
	json := mode == "1" || mode == "true" || mode == "json"
	opts := &slog.HandlerOptions{Level: LevelFromString(os.Getenv(envLogLevel))}
	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	logger := slog.New(handler).With("cmd", name)
	slog.SetDefault(logger)
	logger.Debug("logging initialized", "json", json)
	return logger
}

// LevelFromString maps a level name to a slog level, defaulting to info.
func LevelFromString(lvl string) slog.Level {
	switch strings.ToLower(lvl) {
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
