package logger

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New builds the process logger. Output goes to stdout and, when logFilePath is set,
// is appended to that file as well. An unknown level falls back to info.
func New(level, logFilePath string) (zerolog.Logger, io.Closer) {
	writers := []io.Writer{os.Stdout}
	var closer io.Closer = nopCloser{}

	if logFilePath != "" {
		file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o664)
		if err != nil {
			// The logger does not exist yet.
			os.Stderr.WriteString("Failed to open log file: " + err.Error() + "\n")
		} else {
			writers = append(writers, file)
			closer = file
		}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	l := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().Timestamp().Str("app", "payroll-bot").Logger().
		Level(lvl)
	log.Logger = l
	return l, closer
}

// WithFields returns ctx carrying a child of l with the given fields.
func WithFields(ctx context.Context, l zerolog.Logger, fields map[string]interface{}) context.Context {
	return l.With().Fields(fields).Logger().WithContext(ctx)
}

// From extracts the logger stored in ctx, falling back to the global one.
func From(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		return &log.Logger
	}
	return l
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
