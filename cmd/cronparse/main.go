package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli"

	"github.com/amir-mohammad-HP/cronparse/internal/app"
	"github.com/amir-mohammad-HP/cronparse/internal/config"
	"github.com/amir-mohammad-HP/cronparse/internal/types"
	"github.com/amir-mohammad-HP/cronparse/pkg/logger"
)

var version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Setup logger
	logger := logger.NewWithEnvironment(cfg.Environment, cfg.LogLevel)

	cliApp := cli.NewApp()
	cliApp.Name = "cronparse"
	cliApp.Usage = "expand a cron expression into the concrete times it describes"
	cliApp.Version = version
	cliApp.ArgsUsage = "\"<cron expression>\""
	cliApp.Flags = parseFlags
	cliApp.Action = parseAction(cfg, logger)
	cliApp.Commands = []cli.Command{
		{
			Name:      "parse",
			Usage:     "parse a cron expression and print the expansion table",
			ArgsUsage: "\"<cron expression>\"",
			Flags:     parseFlags,
			Action:    parseAction(cfg, logger),
		},
		{
			Name:      "next",
			Usage:     "show the upcoming times a cron expression fires",
			ArgsUsage: "\"<cron expression>\"",
			Flags:     nextFlags,
			Action:    nextAction(cfg, logger),
		},
		{
			Name:      "check",
			Usage:     "lint every schedule line of a crontab file",
			ArgsUsage: "<path>",
			Action:    checkAction(cfg, logger),
		},
		{
			Name:  "config",
			Usage: "write a default configuration file to the system config directory",
			Action: func(ctx *cli.Context) error {
				if err := config.CreateDefaultConfig(); err != nil {
					return cli.NewExitError(err.Error(), 1)
				}
				fmt.Println("Default configuration written")
				return nil
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		logger.Error("Application failed %s", err)
		os.Exit(1)
	}
}

func parseAction(cfg *types.Config, log logger.Logger) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		expr := ctx.Args().First()
		if expr == "" {
			cli.ShowAppHelpAndExit(ctx, 1)
			return nil
		}

		if columnWidth > 0 {
			cfg.Output.ColumnWidth = columnWidth
		}
		if jsonOutput {
			cfg.Output.Format = "json"
		}

		if err := app.New(cfg, log).Parse(expr); err != nil {
			return parseError(err)
		}
		return nil
	}
}

func nextAction(cfg *types.Config, log logger.Logger) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		expr := ctx.Args().First()
		if expr == "" {
			return cli.NewExitError(errors.New("no cron expression provided"), 1)
		}

		if err := app.New(cfg, log).Next(expr, nextCount); err != nil {
			return parseError(err)
		}
		return nil
	}
}

func checkAction(cfg *types.Config, log logger.Logger) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		path := ctx.Args().First()
		if path == "" {
			return cli.NewExitError(errors.New("no crontab path provided"), 1)
		}

		if err := app.New(cfg, log).Check(path); err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		return nil
	}
}

// parseError wraps a parse failure in the user-facing error surface
func parseError(err error) error {
	msg := fmt.Sprintf("Error parsing cron: %v. Please ensure your cron string is in a valid format.", err)
	return cli.NewExitError(msg, 1)
}
