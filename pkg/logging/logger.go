// Package logging provides structured logging for llamafi using zerolog.
// Console output is used when stderr is a terminal and JSON otherwise.
//
// Example usage:
//
//	logging.ConfigureFromEnv()
//	ctx := logging.WithOperation(context.Background(), "historical-prices")
//	logging.FromContext(ctx).Debug().Str("url", u).Msg("Resolved endpoint")
package logging

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// defaultLogger backs FromContext when a context carries no logger.
var defaultLogger zerolog.Logger

func init() {
	defaultLogger = NewLoggerFromConfig(envConfig())
}

// Default returns the default global logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault replaces the default global logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger
}

// Warn starts a warning event on the default logger.
func Warn() *zerolog.Event {
	return defaultLogger.Warn()
}

func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
