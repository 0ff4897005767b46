package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/srgjo27/tutor_booking/internal/adapter/backend"
	"github.com/srgjo27/tutor_booking/internal/cli"
	"github.com/srgjo27/tutor_booking/internal/platform/config"
	"github.com/srgjo27/tutor_booking/internal/platform/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Token   string `help:"Bearer token for the marketplace API." env:"SLOTCTL_TOKEN"`

	NextDate  cli.NextDateCmd  `cmd:"" help:"Show the next date a weekday falls on."`
	Options   cli.OptionsCmd   `cmd:"" help:"List selectable start or end times for a slot."`
	CheckDate cli.CheckDateCmd `cmd:"" help:"Check that a date falls on a weekday."`
	Duration  cli.DurationCmd  `cmd:"" help:"Compute session length and cost."`
	Book      cli.BookCmd      `cmd:"" help:"Validate and submit a booking."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("slotctl"),
		kong.Description("Tutor session slot resolver"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	appCtx := &cli.Context{
		Out:   os.Stdout,
		Now:   time.Now,
		Token: CLI.Token,
	}

	if ctx.Command() == "book" {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		zapLogger := logger.NewZapLogger(cfg.Logger.Level, cfg.App.Env)
		defer zapLogger.Sync()

		appCtx.Backend = backend.NewClient(backend.Config{
			BaseURL:           cfg.Backend.BaseURL,
			Timeout:           cfg.Backend.Timeout,
			RequestsPerSecond: cfg.Backend.RequestsPerSecond,
		}, zapLogger)
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
