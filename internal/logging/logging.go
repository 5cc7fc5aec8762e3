package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the application logger: console output always, plus any extra
// sinks (such as the UI log pane) combined through a multi-level writer.
// The logger is handed to components at construction time; there is no
// package-level global.
func New(level string, extra ...io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}}
	for _, w := range extra {
		if w != nil {
			writers = append(writers, w)
		}
	}

	return zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// ComponentLogger returns a child logger tagged with the component name
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// PaneWriter wraps a plain text sink in a console-format writer without
// colors, suitable for feeding a log widget.
func PaneWriter(sink io.Writer) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        sink,
		TimeFormat: "15:04:05",
		NoColor:    true,
	}
}
