package main

import "github.com/urfave/cli"

var (
	columnWidth int
	jsonOutput  bool
	nextCount   int
)

var parseFlags = []cli.Flag{
	cli.IntFlag{
		Name:        "width, w",
		Usage:       "width of the field-name column",
		EnvVar:      "CRONPARSE_OUTPUT_COLUMN_WIDTH",
		Destination: &columnWidth,
	},
	cli.BoolFlag{
		Name:        "json, j",
		Usage:       "emit the parsed schedule as JSON instead of a table",
		Destination: &jsonOutput,
	},
}

var nextFlags = []cli.Flag{
	cli.IntFlag{
		Name:        "count, n",
		Usage:       "number of upcoming occurrences to show",
		Destination: &nextCount,
	},
}
