// Package logging builds the zerolog logger used for warnings and debug output.
// Report lines meant for the user (sizes, the redirect notice) are not logged;
// commands print those directly.
package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to out at the given level name.
// Unknown level names fall back to info. Process-wide zerolog settings are
// left alone.
func New(out io.Writer, level string) zerolog.Logger {
	writer := zerolog.ConsoleWriter{Out: out, NoColor: true}
	writer.PartsOrder = []string{
		zerolog.LevelFieldName,
		zerolog.MessageFieldName,
	}

	return zerolog.New(writer).Level(ParseLevel(level))
}

// ParseLevel maps a level name to a zerolog level.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "off", "disabled", "none":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
