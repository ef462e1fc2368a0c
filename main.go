// Package main implements the main entry point for a CHIP-8 interpreter
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/retroenv/retrochip8/internal/app"
	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/engine"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrochip8/internal/scheduler"
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
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		if usageErr, ok := cli.IsUsageError(err); ok {
			app.PrintBanner(logger, "retrochip8", version, commit, date)
			if usageErr.Error() != "" {
				logger.Error(usageErr.Error())
			}
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	if !opts.Quiet {
		app.PrintBanner(logger, "retrochip8", version, commit, date)
	}

	if err := run(ctx, logger, opts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Execution failed", log.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	image, err := loader.New().Load(opts)
	if err != nil {
		return err
	}
	app.PrintInfo(logger, opts, image)

	state, err := config.CreateMachine(opts, image)
	if err != nil {
		return err
	}

	eng := engine.New(config.Seed(opts, time.Now))
	sched, err := scheduler.New(eng, opts.FPS, opts.InstructionsPerFrame)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	renderer, err := display.New(opts.Renderer, cancel)
	if err != nil {
		return err
	}

	r := runner.New(logger, sched, renderer, opts.Machine, opts.Trace)
	runErr := r.Run(ctx, state)

	if err := renderer.Close(); err != nil && runErr == nil {
		return err
	}
	return runErr
}
