// Package web parses web service flags and launches the converter UI.
package web

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	entrypoint "github.com/gaurikolhe/roman-numeral-converter/internal/platform/cmd"
	"github.com/gaurikolhe/roman-numeral-converter/internal/platform/logging"
	"github.com/gaurikolhe/roman-numeral-converter/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr   string `env:"ROMAN_NUMERAL_WEB_HTTP_ADDR" envDefault:":3000"`
	APIBaseURL string `env:"ROMAN_NUMERAL_WEB_API_URL" envDefault:"http://localhost:8080"`
	LogLevel   string `env:"ROMAN_NUMERAL_LOG_LEVEL" envDefault:"info"`
	LogFile    string `env:"ROMAN_NUMERAL_LOG_FILE" envDefault:"app.log"`
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
	fs.StringVar(&cfg.APIBaseURL, "api-url", cfg.APIBaseURL, "Conversion API base URL")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Minimum log level")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, `Log file receiving a copy of every line ("-" disables)`)
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web converter server.
func Run(ctx context.Context, cfg Config) error {
	logger, closeLog, err := logging.New(entrypoint.ServiceWeb, logging.Config{
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

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:   cfg.HTTPAddr,
			APIBaseURL: cfg.APIBaseURL,
			Logger:     logger,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
