// Package romannumeral parses API service flags and launches the service.
package romannumeral

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	entrypoint "github.com/gaurikolhe/roman-numeral-converter/internal/platform/cmd"
	"github.com/gaurikolhe/roman-numeral-converter/internal/platform/logging"
	server "github.com/gaurikolhe/roman-numeral-converter/internal/services/romannumeral"
)

// Config holds API command configuration.
type Config struct {
	HTTPAddr    string   `env:"ROMAN_NUMERAL_API_HTTP_ADDR" envDefault:":8080"`
	CORSOrigins []string `env:"ROMAN_NUMERAL_API_CORS_ORIGINS" envDefault:"http://localhost:3000" envSeparator:","`
	LogLevel    string   `env:"ROMAN_NUMERAL_LOG_LEVEL" envDefault:"info"`
	LogFile     string   `env:"ROMAN_NUMERAL_LOG_FILE" envDefault:"app.log"`
	// Stdout receives log lines; nil means os.Stdout.
	Stdout io.Writer
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.Func("cors-origins", "Comma-separated origins allowed to call the API", func(value string) error {
		cfg.CORSOrigins = splitList(value)
		return nil
	})
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Minimum log level")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, `Log file receiving a copy of every line ("-" disables)`)
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the conversion API service.
func Run(ctx context.Context, cfg Config) error {
	logger, closeLog, err := logging.New(entrypoint.ServiceRomanNumeral, logging.Config{
		Level: cfg.LogLevel,
		File:  cfg.LogFile,
	}, cfg.Stdout)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() {
		if err := closeLog(); err != nil {
			fmt.Fprintf(os.Stderr, "close log file: %v\n", err)
		}
	}()

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceRomanNumeral, func(ctx context.Context) error {
		srv, err := server.NewServer(ctx, server.Config{
			HTTPAddr:    cfg.HTTPAddr,
			CORSOrigins: cfg.CORSOrigins,
			Logger:      logger,
		})
		if err != nil {
			return fmt.Errorf("init romannumeral server: %w", err)
		}
		defer srv.Close()

		if err := srv.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve romannumeral: %w", err)
		}
		return nil
	})
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
