// Package logging configures the zerolog logger shared by the engine and CLI.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lgbarn/checkers-go/internal/errors"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Options selects level, format and destination of log output.
type Options struct {
	Level  string    // trace, debug, info, warn, error, disabled
	Format string    // console or json
	Writer io.Writer // defaults to os.Stderr
}

// New builds a logger from opts without touching the global logger.
func New(opts Options) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return zerolog.Nop(), errors.Wrapf(errors.ErrInvalidConfig, "log level %q", opts.Level)
		}
		level = parsed
	}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	switch strings.ToLower(opts.Format) {
	case "", FormatConsole:
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}
	case FormatJSON:
	default:
		return zerolog.Nop(), errors.Wrapf(errors.ErrInvalidConfig, "log format %q", opts.Format)
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// Configure builds a logger from opts and installs it as the global logger.
func Configure(opts Options) (zerolog.Logger, error) {
	logger, err := New(opts)
	if err != nil {
		return logger, err
	}
	log.Logger = logger
	return logger, nil
}

// Debugf logs a formatted message at debug level on the global logger.
func Debugf(format string, args ...interface{}) {
	log.Debug().Msgf(format, args...)
}
