package logutil

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New builds the application logger. Logs go to w (normally stderr) so that
// tabular results on stdout stay machine-readable. quiet raises the level to
// warnings only.
func New(app string, w io.Writer, quiet bool) zerolog.Logger {
	lvl := zerolog.InfoLevel
	if quiet {
		lvl = zerolog.WarnLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(lvl).With().Timestamp().Str("app", app).Logger()
}
