package util

import (
	"log/slog"
	"os"
	"strconv"
)

// EnvInt returns the integer value of the named environment variable, or
// def when it is unset or malformed.
func EnvInt(name string, def int) int {
	s, ok := os.LookupEnv(name)
	if !ok || s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		slog.Warn("ignoring malformed environment variable", "name", name, "value", s)
		return def
	}
	return n
}
