// Package main implements the entry point of a converter between Intel HEX
// and Commodore PRG files.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/prghex/internal/cli"
	"github.com/retroenv/prghex/internal/config"
	"github.com/retroenv/prghex/internal/fileprocessor"
	"github.com/retroenv/retrogolib/app"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseArgs(ctx, os.Args, os.Stdout)
	if err != nil {
		if errors.Is(err, cli.ErrHelpShown) {
			return
		}

		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fileprocessor.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage(os.Stdout)
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	if err := fileprocessor.ProcessFiles(ctx, logger, opts); err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}
}
