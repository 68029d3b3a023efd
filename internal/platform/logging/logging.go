// Package logging builds the structured JSON loggers shared by service processes.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// FileDisabled as Config.File turns the file copy off.
const FileDisabled = "-"

// Config selects the log level and an optional file that receives a copy of
// every line written to the primary output.
type Config struct {
	Level string
	File  string
}

// New returns a JSON logger tagged with service. The returned close function
// releases the log file, if one was opened.
func New(service string, cfg Config, out io.Writer) (zerolog.Logger, func() error, error) {
	noClose := func() error { return nil }
	if out == nil {
		out = os.Stdout
	}
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), noClose, err
	}

	closeFn := noClose
	writer := out
	if path := strings.TrimSpace(cfg.File); path != "" && path != FileDisabled {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), noClose, fmt.Errorf("open log file %s: %w", path, err)
		}
		writer = zerolog.MultiLevelWriter(out, file)
		closeFn = file.Close
	}

	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("service", service).
		Logger()
	return logger, closeFn, nil
}

// ParseLevel maps a config string to a zerolog level. Empty means info.
func ParseLevel(value string) (zerolog.Level, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(value)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log level %q: %w", value, err)
	}
	return level, nil
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.DurationFieldUnit = time.Millisecond
}
