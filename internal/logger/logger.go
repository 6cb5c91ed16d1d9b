package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds the process logger. Cloud Logging reads the level from the
// "severity" field; development gets the console writer and debug level.
func New() zerolog.Logger {
	return NewWithWriter(os.Stderr, os.Getenv("ENV"))
}

// NewWithWriter is New with an explicit sink and environment.
func NewWithWriter(w io.Writer, env string) zerolog.Logger {
	zerolog.LevelFieldName = "severity"
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if env == "development" || env == "" {
		return zerolog.New(zerolog.ConsoleWriter{Out: w}).
			With().Timestamp().Str("app", "kizuna").Logger().
			Level(zerolog.DebugLevel)
	}
	return zerolog.New(w).With().Timestamp().Str("app", "kizuna").Logger().Level(zerolog.InfoLevel)
}

// Nop discards everything; used by tests.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
