// Package logx provides the engine's structured diagnostic logger: a
// zerolog console writer aimed at stderr, so it never collides with the
// UCI protocol stream on stdout.
package logx

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the console-writer logger used throughout the engine
// process, in the style of the pack's own internal/logx package: short
// caller info, RFC3339 timestamps, colored level tags when stderr is a
// terminal.
func New() zerolog.Logger {
	var writer = zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	writer.FormatCaller = func(i interface{}) string {
		var s, ok = i.(string)
		if !ok {
			return ""
		}
		return s
	}
	return zerolog.New(writer).
		With().
		Timestamp().
		Caller().
		Logger()
}

// SearchLogger adapts a zerolog.Logger to the narrow interface the search
// core depends on (search.DiagnosticLogger), so search never imports
// zerolog directly.
type SearchLogger struct {
	Logger zerolog.Logger
}

func (l SearchLogger) Warnf(format string, args ...interface{}) {
	l.Logger.Warn().Msgf(format, args...)
}

func (l SearchLogger) Statf(format string, args ...interface{}) {
	l.Logger.Info().Msgf(format, args...)
}
