// Package logger constructs the application's zerolog loggers.
// Components receive a zerolog.Logger and narrow it with
// log.With().Str("component", ...) so every line carries its origin.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config controls logger construction.
type Config struct {
	Level  string // trace, debug, info, warn, error; defaults to info
	Pretty bool   // human-readable console output instead of JSON
}

// New builds a logger writing to stderr at the configured level.
func New(cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var log zerolog.Logger
	if cfg.Pretty {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		log = zerolog.New(os.Stderr)
	}

	return log.Level(level).With().Timestamp().Logger()
}
