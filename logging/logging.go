// Package logging configures the zerolog logger shared by all uf packages.
package logging

import (
	"fmt"
	"github.com/adrg/xdg"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"io"
	"os"
	"time"
)

// DefaultLevel is used when no level, or an unknown level, is requested.
const DefaultLevel = zerolog.WarnLevel

// logFileSuffix is relative to $XDG_STATE_HOME.
const logFileSuffix = "uf/uf.log"

// Library callers that never call Setup only see warnings and errors.
func init() {
	zerolog.SetGlobalLevel(DefaultLevel)
}

// Setup configures the global logger.
// Output goes to stderr; when toFile is set it is also appended to $XDG_STATE_HOME/uf/uf.log.
// level is a zerolog level name such as "debug" or "warn".
func Setup(level string, toFile bool) {
	zerolog.SetGlobalLevel(ParseLevel(level))

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}

	writers := []io.Writer{consoleWriter}

	var fileErr error
	var logFile string
	if toFile {
		var file *os.File
		file, logFile, fileErr = openLogFile()
		if fileErr == nil {
			writers = append(writers, file)
		}
	}

	log.Logger = zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Msg("Failed to open log file, logging to console only")
	}

	log.Debug().Str("level", zerolog.GlobalLevel().String()).Str("logFile", logFile).Msg("Logger initialized")
}

// ParseLevel returns the zerolog level for name, falling back to [DefaultLevel].
func ParseLevel(name string) zerolog.Level {
	if name == "" {
		return DefaultLevel
	}

	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return DefaultLevel
	}

	return level
}

// GetLogger returns a logger tagged with the given component name.
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

func openLogFile() (*os.File, string, error) {
	path, err := xdg.StateFile(logFileSuffix)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, path, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	return file, path, nil
}
