// Package logging provides the zerolog logger used for diagnostics on
// stderr. Catalog output itself goes to stdout through pkg/printers.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Nop discards everything; tests hand it to components that log.
var Nop = zerolog.Nop()

var defaultLogger = New(os.Stderr, levelFromEnv())

// New returns a console logger writing to w at level.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    os.Getenv("NO_COLOR") != "" || !isTerminal(w),
	}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// Default returns the process-wide logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault replaces the process-wide logger.
func SetDefault(l zerolog.Logger) {
	defaultLogger = l
}

// SetVerbose lowers the default logger to debug level.
func SetVerbose(verbose bool) {
	if verbose {
		defaultLogger = defaultLogger.Level(zerolog.DebugLevel)
	}
}

// levelFromEnv reads TCUTILS_LOG_LEVEL, defaulting to info.
func levelFromEnv() zerolog.Level {
	raw := os.Getenv("TCUTILS_LOG_LEVEL")
	if raw == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(raw)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
