package cli

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// EnvLogLevel overrides the default log level when --log-level is not set.
const EnvLogLevel = "DATATABLE_LOG_LEVEL"

const defaultLogLevel = "warn"

// newLogger returns a console logger writing to w. An unparsable level
// falls back to info.
func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    !isTerminal(w),
	}
	return zerolog.New(console).
		Level(lvl).
		With().
		Timestamp().
		Str("component", "cli").
		Logger()
}

// resolveLogLevel picks the flag value when set, then the environment, then
// the default.
func resolveLogLevel(flag string, changed bool, lookupEnv func(string) (string, bool)) string {
	if changed {
		return flag
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		return v
	}
	return defaultLogLevel
}
