package logutil

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type (
	key byte
)

var (
	loggerKey = key(1)
)

// Root builds the process logger. With debug set the level drops to
// Debug and output switches to the human-friendly console writer.
func Root(debug bool) zerolog.Logger {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if debug {
		return logger.Level(zerolog.DebugLevel).Output(zerolog.NewConsoleWriter())
	}
	return logger.Level(zerolog.InfoLevel)
}

func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

func GetOrDefault(ctx context.Context) zerolog.Logger {
	v := ctx.Value(loggerKey)
	if v == nil {
		return log.Logger
	}
	return v.(zerolog.Logger)
}
