// Package main starts the Roman numeral conversion API process.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	romannumeralcmd "github.com/gaurikolhe/roman-numeral-converter/internal/cmd/romannumeral"
	"github.com/gaurikolhe/roman-numeral-converter/internal/platform/config"
)

func main() {
	cfg, err := romannumeralcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := romannumeralcmd.Run(ctx, cfg); err != nil {
		stop()
		config.Exitf("romannumeral: %v", err)
	}
}
