// Package main implements the main entry point for a CHIP-8 emulator
package main

import (
	"errors"
	"os"

	"github.com/retroenv/retrochip8/internal/app"
	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	retroapp "github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := retroapp.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Flags)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			app.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Error("Parsing arguments failed", log.Err(err))
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Flags)
	app.PrintBanner(logger, opts, version, commit, date)

	if err := app.Run(ctx, logger, opts, os.Stdout); err != nil {
		logger.Error("Execution failed", log.Err(err))
		os.Exit(1)
	}
}
